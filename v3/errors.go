package v3

import "fmt"

// Error is the error type for the v3 package. It implements the gocrystal
// Error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return fmt.Sprintf("gocrystal/v3: %s", err.message) }

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	//E.deco is a slice, so the received is altered even without a pointer receiver.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

// PanicMsg is the type used for all the panics raised in the v3 package.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNot3xX          = PanicMsg("gocrystal/v3: A v3.Matrix should have 3 columns")
	ErrShape           = PanicMsg("gocrystal/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("gocrystal/v3: Index out of range")
)
