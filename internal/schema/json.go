package schema

import "encoding/json"

type memberJSON struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type propJSON struct {
	Access  string       `json:"access"`
	Type    string       `json:"type"`
	Label   string       `json:"label"`
	Desc    string       `json:"desc"`
	Default any          `json:"default"`
	Min     *int64       `json:"min,omitempty"`
	Max     *int64       `json:"max,omitempty"`
	UMin    *uint64      `json:"umin,omitempty"`
	UMax    *uint64      `json:"umax,omitempty"`
	Members []memberJSON `json:"members,omitempty"`
	Enum    []string     `json:"enum,omitempty"`
}

// JSON dumps the client-visible catalogue: a descriptor per Read/Write
// property and the ordered list of properties prompted for at creation.
func JSON() (string, error) {
	out := struct {
		Schema           map[string]propJSON `json:"schema"`
		CreateProperties []string            `json:"create_properties"`
	}{
		Schema:           make(map[string]propJSON, len(Properties)),
		CreateProperties: CreateProperties,
	}
	for _, def := range Properties {
		if def.Access == AccessNone {
			continue
		}
		p := propJSON{
			Type:  def.Type.typeName(),
			Label: def.Label,
			Desc:  def.Desc,
		}
		if def.Access == AccessWrite {
			p.Access = "write"
		} else {
			p.Access = "read"
		}
		switch ty := def.Type.(type) {
		case Bool:
			p.Default = ty.Default
		case String:
			p.Default = ty.Default
		case Int:
			p.Default = ty.Default
			min, max := ty.Min, ty.Max
			p.Min, p.Max = &min, &max
		case Uint:
			p.Default = ty.Default
			min, max := ty.Min, ty.Max
			p.UMin, p.UMax = &min, &max
		case Datetime:
			p.Default = nil
		case IntEnum:
			p.Default = ty.Default
			p.Enum = ty.Members
		case StrEnum:
			p.Default = ty.Members[ty.Default].Value
			for _, m := range ty.Members {
				p.Members = append(p.Members, memberJSON{Value: m.Value, Label: m.Label})
			}
		}
		out.Schema[def.Name] = p
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DefaultPropString renders a definition's default the way it is stored in
// a property file; datetime defaults are the caller's current time.
func DefaultPropString(def *Def, now string) string {
	switch ty := def.Type.(type) {
	case Bool:
		if ty.Default {
			return "true"
		}
		return "false"
	case String:
		return ty.Default
	case Int:
		return IntValue(ty.Default).PropString()
	case Uint:
		return UintValue(ty.Default).PropString()
	case Datetime:
		return now
	case IntEnum:
		return UintValue(ty.Default).PropString()
	case StrEnum:
		return ty.Members[ty.Default].Value
	}
	return ""
}

// IsStringy reports whether the property's stored value is textual (and so
// must be JSON-quoted when serialized), as opposed to a bare number or
// boolean that can pass through verbatim.
func IsStringy(ty Type) bool {
	switch ty.(type) {
	case String, Datetime, StrEnum:
		return true
	}
	return false
}
