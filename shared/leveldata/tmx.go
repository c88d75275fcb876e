package leveldata

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/lafriks/go-tiled"
)

// Object group names read from Tiled maps.
const (
	groupLevel           = "Level"
	groupPlayerSpawn     = "PlayerSpawn"
	groupPlatforms       = "Platforms"
	groupWalls           = "Walls"
	groupRoofs           = "Roofs"
	groupHazards         = "Hazards"
	groupCollectibles    = "Collectibles"
	groupGoal            = "Goal"
	groupHesitationZones = "HesitationZones"

	// Tiles on this layer become surfaces. The tileset tile's "kind"
	// property picks platform, wall or roof; platform is the default.
	surfaceTileLayer = "surfaces"
)

// LoadTMX parses a Tiled map into a Level. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. The result is validated before it is returned.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   tmxPath,
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupLevel:
			for _, o := range og.Objects {
				applyLevelProperties(level, o.Properties)
			}
		case groupPlayerSpawn:
			for _, o := range og.Objects {
				p := Point{X: o.X, Y: o.Y}
				if o.Name == "respawn" {
					level.Respawn = &p
					continue
				}
				level.Spawn = p
				level.SpawnFacingLeft = o.Properties.GetBool("facing_left")
			}
		case groupPlatforms, groupWalls, groupRoofs:
			kind := map[string]SurfaceKind{
				groupPlatforms: SurfacePlatform,
				groupWalls:     SurfaceWall,
				groupRoofs:     SurfaceRoof,
			}[og.Name]
			for _, o := range og.Objects {
				level.Surfaces = append(level.Surfaces, Surface{
					ID:   objectID(o),
					Kind: kind,
					Rect: objectRect(o),
				})
			}
		case groupHazards:
			for _, o := range og.Objects {
				level.Hazards = append(level.Hazards, Hazard{
					ID:     objectID(o),
					Rect:   objectRect(o),
					Lethal: o.Properties.GetBool("lethal"),
					Fools:  o.Properties.GetBool("fools"),
					Motion: objectMotion(o),
				})
			}
		case groupCollectibles:
			for _, o := range og.Objects {
				level.Collectibles = append(level.Collectibles, Collectible{
					ID:            objectID(o),
					Rect:          objectRect(o),
					Lethal:        o.Properties.GetBool("lethal"),
					Fools:         o.Properties.GetBool("fools"),
					SwapsControls: o.Properties.GetBool("swaps_controls"),
				})
			}
		case groupGoal:
			for _, o := range og.Objects {
				goal := &Goal{Rect: objectRect(o)}
				if len(o.Properties.Get("reveal_left_of")) > 0 {
					v := o.Properties.GetFloat("reveal_left_of")
					goal.RevealLeftOf = &v
				}
				level.Goal = goal
			}
		case groupHesitationZones:
			for _, o := range og.Objects {
				level.HesitationZones = append(level.HesitationZones, HesitationZone{
					ID:        objectID(o),
					Rect:      objectRect(o),
					Threshold: seconds(o.Properties.GetFloat("threshold")),
				})
			}
		}
	}

	level.Surfaces = append(level.Surfaces, tileSurfaces(levelMap)...)

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("validate TMX %s: %w", tmxPath, err)
	}
	return level, nil
}

func applyLevelProperties(level *Level, props tiled.Properties) {
	level.Number = props.GetInt("number")
	if name := props.GetString("name"); name != "" {
		level.Name = name
	}
	level.Gravity = props.GetFloat("gravity")
	level.JumpForce = props.GetFloat("jump_force")
	level.HeightenedJumpForce = props.GetFloat("heightened_jump_force")
	level.GravityFlip = props.GetBool("gravity_flip")
	level.InvertFacingWhenReversed = props.GetBool("invert_facing_when_reversed")
	level.TapPenalty = props.GetBool("tap_penalty")
	level.FloorDeathY = props.GetFloat("floor_death_y")
	level.CeilingDeathY = props.GetFloat("ceiling_death_y")
	level.DeathOverlay = seconds(props.GetFloat("death_overlay"))
	level.ResetCollectiblesOnDeath = props.GetBool("reset_collectibles_on_death")
	level.ResetHazardsOnDeath = props.GetBool("reset_hazards_on_death")
	level.TracksFooled = props.GetBool("tracks_fooled")
}

func objectMotion(o *tiled.Object) Motion {
	kind := o.Class
	if kind == "" {
		kind = o.Type //nolint:staticcheck // older TMX files use type=
	}
	if kind == "" {
		kind = string(MotionStationary)
	}
	return Motion{
		Kind:         MotionKind(kind),
		Min:          o.Properties.GetFloat("min"),
		Max:          o.Properties.GetFloat("max"),
		Speed:        o.Properties.GetFloat("speed"),
		Backward:     o.Properties.GetBool("backward"),
		Radius:       o.Properties.GetFloat("radius"),
		TargetX:      o.Properties.GetFloat("target_x"),
		AngularSpeed: o.Properties.GetFloat("angular_speed"),
	}
}

// tileSurfaces merges horizontal runs of same-kind tiles into single rects
// so a long floor becomes one surface instead of one per tile.
func tileSurfaces(levelMap *tiled.Map) []Surface {
	var out []Surface
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	for _, layer := range levelMap.Layers {
		if layer.Name != surfaceTileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			runStart := -1
			var runKind SurfaceKind
			flush := func(end int) {
				if runStart < 0 {
					return
				}
				out = append(out, Surface{
					ID:   fmt.Sprintf("tiles-%d-%d", runStart, y),
					Kind: runKind,
					Rect: Rect{
						X: float64(runStart) * tileW,
						Y: float64(y) * tileH,
						W: float64(end-runStart) * tileW,
						H: tileH,
					},
				})
				runStart = -1
			}
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					flush(x)
					continue
				}
				kind := SurfacePlatform
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if k := tilesetTile.Properties.GetString("kind"); k != "" {
						kind = SurfaceKind(k)
					}
				}
				if runStart >= 0 && kind != runKind {
					flush(x)
				}
				if runStart < 0 {
					runStart = x
					runKind = kind
				}
			}
			flush(levelMap.Width)
		}
		break
	}
	return out
}

func objectID(o *tiled.Object) string {
	if o.Name != "" {
		return o.Name
	}
	return fmt.Sprintf("object%d", o.ID)
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
