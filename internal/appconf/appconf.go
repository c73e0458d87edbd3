package appconf

// Environment describes the operating environment for the application.
type Environment int

const (
	Development Environment = iota
	Staging
	Production
	Test
)

// EnvFlagToEnvironment converts an environment flag value (e.g. "production")
// into an Environment. Unknown values map to Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "staging":
		return Staging
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Staging:
		return "staging"
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}
