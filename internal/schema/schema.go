// Package schema is the static catalogue of every recognized server
// property: its access class, typed domain, default, and display metadata.
package schema

// Access classifies who may see or change a property. None keeps it out of
// the API entirely, Read exposes it, Write additionally allows clients to
// set it.
type Access int

const (
	AccessNone Access = iota
	AccessRead
	AccessWrite
)

// Type is the typed domain of a property. Concrete types: Bool, String,
// Int, Uint, Datetime, IntEnum, StrEnum.
type Type interface {
	typeName() string
}

type Bool struct{ Default bool }

type String struct{ Default string }

// Int is a signed integer in [Min, Max].
type Int struct{ Default, Min, Max int64 }

// Uint is an unsigned integer in [Min, Max].
type Uint struct{ Default, Min, Max uint64 }

// Datetime is a "YYYY-MM-DD HH:MM:SS" string whose default is the current
// time at generation.
type Datetime struct{}

// IntEnum is a numeric enum: the stored value is an index into Members.
type IntEnum struct {
	Default uint64
	Members []string
}

// Member is one StrEnum alternative: the stored Value and its display Label.
type Member struct {
	Value string
	Label string
}

// StrEnum stores one of the member values; Default indexes Members.
type StrEnum struct {
	Default int
	Members []Member
}

func (Bool) typeName() string     { return "bool" }
func (String) typeName() string   { return "string" }
func (Int) typeName() string      { return "int" }
func (Uint) typeName() string     { return "uint" }
func (Datetime) typeName() string { return "datetime" }
func (IntEnum) typeName() string  { return "int-enum" }
func (StrEnum) typeName() string  { return "str-enum" }

// Def describes one property completely.
type Def struct {
	Access Access
	Type   Type
	Name   string
	Label  string
	Desc   string
}

// Lookup returns the definition for name, or nil.
func Lookup(name string) *Def {
	for i := range Properties {
		if Properties[i].Name == name {
			return &Properties[i]
		}
	}
	return nil
}

// VersionProperty is the metadata key recording which server version a
// save was created from; it is filled from the create request, never from
// a default.
const VersionProperty = "mc-manager-server-version"

// AccessTimeProperty records when the save was last online.
const AccessTimeProperty = "mc-manager-access-time"

// CreateProperties is the ordered subset clients are prompted for when
// creating a save.
var CreateProperties = []string{
	"motd",
	"level-seed",
	"gamemode",
	"difficulty",
	"server-port",
	"pvp",
	"max-players",
	"enable-command-block",
	"online-mode",
	"enforce-secure-profile",
	"level-type",
}
