package symmetry

import "fmt"

// Error is returned when a symmetry operation can't be parsed.
// It implements the gocrystal Error interface.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("gocrystal/symmetry: %s", err.message)
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
