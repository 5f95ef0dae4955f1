package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ErrBadClass is returned for class entries that are neither a string nor an object.
var ErrBadClass = errors.New("class must be a string or an object")

// Class is one entry of a slot. Documents store it either as a bare course
// identifier ("Math") or as an object with room and type.
type Class struct {
	CourseID  string //Course identifier
	Classroom string //Room
	ClassType string //Lecture, lab, tutorial...

	// Bare is set for classes read from a plain string and written back as one.
	Bare bool

	// Objects read from a document are written back as read, keys the
	// fields above do not know about included.
	raw  json.RawMessage
	node *yaml.Node
}

// classFields has the fields of Class without its codec methods.
type classFields struct {
	CourseID  string `json:"courseId" yaml:"courseId"`
	Classroom string `json:"classroom" yaml:"classroom"`
	ClassType string `json:"classType" yaml:"classType"`
}

// NewClass returns a bare class identified by id.
func NewClass(id string) Class {
	return Class{CourseID: id, Bare: true}
}

// Equal reports whether both entries name the same course, room and type.
func (c Class) Equal(o Class) bool {
	return c.CourseID == o.CourseID && c.Classroom == o.Classroom && c.ClassType == o.ClassType
}

// String renders the class for spreadsheets and logs.
func (c Class) String() string {
	var extra []string
	for _, s := range []string{c.Classroom, c.ClassType} {
		if s != "" {
			extra = append(extra, s)
		}
	}
	if len(extra) == 0 {
		return c.CourseID
	}
	return fmt.Sprintf("%s (%s)", c.CourseID, strings.Join(extra, ", "))
}

func (c Class) fields() classFields {
	return classFields{CourseID: c.CourseID, Classroom: c.Classroom, ClassType: c.ClassType}
}

func (c *Class) setFields(f classFields) {
	c.CourseID, c.Classroom, c.ClassType = f.CourseID, f.Classroom, f.ClassType
}

func (c Class) MarshalJSON() ([]byte, error) {
	switch {
	case c.Bare:
		return encodeJSON(c.CourseID)
	case c.raw != nil:
		return c.raw, nil
	case c.node != nil:
		obj := orderedmap.New[string, any]()
		if err := c.node.Decode(obj); err != nil {
			return nil, fmt.Errorf("class %s: %w", c.CourseID, err)
		}
		return marshalObject(obj)
	}
	return encodeJSON(c.fields())
}

func (c *Class) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrBadClass
	}

	switch data[0] {
	case '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*c = NewClass(id)
		return nil
	case '{':
		var f classFields
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("class: %w", err)
		}
		*c = Class{raw: append(json.RawMessage(nil), data...)}
		c.setFields(f)
		return nil
	}
	return fmt.Errorf("%w, got %s", ErrBadClass, data)
}

func (c Class) MarshalYAML() (interface{}, error) {
	switch {
	case c.Bare:
		return c.CourseID, nil
	case c.node != nil:
		return c.node, nil
	case c.raw != nil:
		var doc yaml.Node
		if err := yaml.Unmarshal(c.raw, &doc); err != nil {
			return nil, fmt.Errorf("class %s: %w", c.CourseID, err)
		}
		n := doc.Content[0]
		blockStyle(n)
		return n, nil
	}
	return c.fields(), nil
}

func (c *Class) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			break
		}
		*c = NewClass(value.Value)
		return nil
	case yaml.MappingNode:
		var f classFields
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("class at line %d: %w", value.Line, err)
		}
		*c = Class{node: value}
		c.setFields(f)
		return nil
	}
	return fmt.Errorf("%w at line %d", ErrBadClass, value.Line)
}

// blockStyle drops the flow style and quoting JSON text parses into. The
// encoder quotes strings again where YAML needs it.
func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, child := range n.Content {
		blockStyle(child)
	}
}

// ClassList is the ordered list of classes held in one slot.
type ClassList []Class

// Clone returns an independent copy. A nil list clones to an empty one.
func (l ClassList) Clone() ClassList {
	out := make(ClassList, len(l))
	copy(out, l)
	return out
}

func (l ClassList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return encodeJSON([]Class(l))
}

func (l *ClassList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("expected a list of classes at line %d", value.Line)
	}

	out := make(ClassList, 0, len(value.Content))
	for _, n := range value.Content {
		if n.Kind == yaml.AliasNode {
			n = n.Alias
		}
		var c Class
		if err := c.UnmarshalYAML(n); err != nil {
			return err
		}
		out = append(out, c)
	}
	*l = out
	return nil
}
