package dialect

import "strings"

// Statement is a SQL skeleton for one query kind. Named slots are written
// as {name}; everything else is literal text.
type Statement struct {
	template string
	parts    []part
	slots    []string
}

type part struct {
	text string
	slot string // non-empty for a slot
}

// NewStatement parses a template into a Statement.
func NewStatement(template string) Statement {
	s := Statement{template: template}
	seen := make(map[string]bool)

	rest := template
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			s.parts = append(s.parts, part{text: rest})
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		name := ""
		if end > 0 {
			name = rest[open+1 : open+end]
		}
		if !isSlotName(name) {
			// Not a slot; keep the brace as literal text.
			s.parts = append(s.parts, part{text: rest[:open+1]})
			rest = rest[open+1:]
			continue
		}
		if open > 0 {
			s.parts = append(s.parts, part{text: rest[:open]})
		}
		s.parts = append(s.parts, part{slot: name})
		if !seen[name] {
			seen[name] = true
			s.slots = append(s.slots, name)
		}
		rest = rest[open+end+1:]
	}
	return s
}

func isSlotName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

// String returns the template text.
func (s Statement) String() string {
	return s.template
}

// Slots returns the distinct slot names in template order.
func (s Statement) Slots() []string {
	return s.slots
}

// Render substitutes values into the template. A slot missing from values
// renders as empty text. Leading spaces of any part that follows a space or
// newline are dropped, slot values included, so gaps left by empty slots
// collapse. Lines lose trailing spaces and the result is trimmed. Whitespace
// inside a slot value is kept.
func (s Statement) Render(values map[string]string) string {
	var b []byte
	for _, p := range s.parts {
		text := p.text
		if p.slot != "" {
			text = values[p.slot]
		}
		if text == "" {
			continue
		}
		if len(b) == 0 || b[len(b)-1] == ' ' || b[len(b)-1] == '\n' {
			text = strings.TrimLeft(text, " ")
		}
		if strings.HasPrefix(text, "\n") {
			for len(b) > 0 && b[len(b)-1] == ' ' {
				b = b[:len(b)-1]
			}
		}
		b = append(b, text...)
	}
	return strings.TrimSpace(string(b))
}
