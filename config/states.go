package config

// StateID identifies the player's discrete animation/behaviour state.
type StateID int

const (
	Idle StateID = iota
	Walking
	Jumping
	UsingPhone
	Greeting
)

const StateNone StateID = -1

var stateNames = map[StateID]string{
	StateNone:  "none",
	Idle:       "idle",
	Walking:    "walking",
	Jumping:    "jumping",
	UsingPhone: "using_phone",
	Greeting:   "greeting",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText lets snapshots carry readable state names.
func (s StateID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
