package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/homebound/config"
	"github.com/automoto/homebound/network"
	"github.com/automoto/homebound/progression"
	"github.com/automoto/homebound/session"
	"github.com/automoto/homebound/shared/clock"
	"github.com/automoto/homebound/shared/leveldata"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding tuning constants")
	levelNum := flag.Int("level", 1, "Built-in level to play")
	levelFile := flag.String("levelfile", "", "Level file to play instead of a built-in (.tmx or .yaml)")
	scriptPath := flag.String("script", "", "YAML input script to play headless")
	serve := flag.String("serve", "", "Address to serve the WebSocket feed on, e.g. :7373")
	ticks := flag.Uint64("ticks", 0, "Tick limit for headless runs (0 = script or default limit)")
	unlock := flag.Bool("unlock", false, "Unlock every level below the one being played")
	seed := flag.Int64("seed", 0, "Death marker seed (0 = config default)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if os.Getenv("HOMEBOUND_DEBUG") != "" {
		config.Session.Debug = true
	}

	level, err := loadLevel(*levelFile, *levelNum)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	store := progression.NewMemoryStore()
	if *unlock {
		for n := 1; n < level.Number; n++ {
			store.UnlockNextLevel(n)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		cancel()
	}()

	var opts []session.Option
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}

	var sess *session.Session
	if *serve != "" {
		sess, err = runServer(ctx, *serve, store, level, opts)
	} else {
		sess, err = runHeadless(ctx, *scriptPath, *ticks, store, level, opts)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Session error: %v", err)
	}

	if r, ok := sess.Result(); ok {
		fmt.Println(r.Prediction())
	} else {
		log.Printf("Level %d not completed after %d ticks", level.Number, sess.Tick())
	}
}

func loadLevel(file string, n int) (*leveldata.Level, error) {
	if file == "" {
		return leveldata.Builtin(n)
	}
	return leveldata.Load(os.DirFS(filepath.Dir(file)), filepath.Base(file))
}

// runServer plays level in real time and streams it to WebSocket viewers,
// who also drive the player.
func runServer(ctx context.Context, addr string, store progression.Store, level *leveldata.Level, opts []session.Option) (*session.Session, error) {
	sess := session.New(store, opts...)
	feed := network.NewFeed(sess)
	sess.AddSink(feed)

	mux := http.NewServeMux()
	mux.Handle("/feed", feed)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server error: %v", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := sess.Start(level); err != nil {
		return sess, err
	}
	log.Printf("Serving level %d on %s/feed (tick rate: %d/s)", level.Number, addr, config.Physics.TickRate)
	return sess, sess.Run(ctx)
}

// runHeadless plays level as fast as possible on a clock that advances one
// tick per step.
func runHeadless(ctx context.Context, scriptPath string, ticks uint64, store progression.Store, level *leveldata.Level, opts []session.Option) (*session.Session, error) {
	script := &session.Script{}
	if scriptPath != "" {
		var err error
		script, err = session.LoadScript(os.DirFS(filepath.Dir(scriptPath)), filepath.Base(scriptPath))
		if err != nil {
			return nil, err
		}
		if script.Level != 0 && script.Level != level.Number {
			log.Printf("Script was recorded for level %d, playing level %d", script.Level, level.Number)
		}
	}
	if ticks != 0 {
		script.MaxTicks = ticks
	}

	clk := clock.NewManual(time.Now())
	step := config.TickDuration()
	sess := session.New(store, append(opts,
		session.WithClock(clk),
		session.WithSink(session.SinkFunc(func(session.Frame) { clk.Advance(step) })),
	)...)
	if err := sess.Start(level); err != nil {
		return sess, err
	}
	_, err := script.Play(ctx, sess)
	return sess, err
}
