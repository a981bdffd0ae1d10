package drawstate

import "fmt"

// ForCompetition resolves a competition key to its Variant. UCL and UEL
// share BaseVariant (they are parameter-identical); UECL gets its
// paired-pot variant.
func ForCompetition(name string) (Variant, error) {
	switch name {
	case "ucl":
		return NewUCL(), nil
	case "uel":
		return NewUEL(), nil
	case "uecl":
		return NewUECL(), nil
	default:
		return nil, fmt.Errorf("drawstate: unknown competition %q (want ucl, uel, or uecl)", name)
	}
}
