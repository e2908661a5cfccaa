package agent

// Type represents a specific type of an agent Config.
// Config's with this type can create Agents of the corresponding type.
type Type string

const (
	// Tabular methods
	GreedySarsaTabular Type = "GreedySarsa-Tabular"
)

// Registered types with the package. Once a Type has been registered
// with this map, a Config with that type can be deserialized. Each
// Type maps to the default Config of that type, which fills in any
// fields missing from serialized Configs.
//
// No Type's are registered with this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes map[Type]Config

func init() {
	registeredTypes = make(map[Type]Config)
}

// Register registers an agent's Type with its default Config so that
// upon deserialization of a TypedConfig, Configs of type agentType are
// deserialized into the concrete type of defaultConfig, starting from
// the values in defaultConfig.
func Register(agentType Type, defaultConfig Config) {
	registeredTypes[agentType] = defaultConfig
}

// Registered returns whether agentType has been registered
func Registered(agentType Type) bool {
	_, ok := registeredTypes[agentType]
	return ok
}
