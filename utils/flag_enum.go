package utils

import "strings"

// StringEnum collects every value of a repeatable flag.
type StringEnum []string

func (i *StringEnum) String() string {
	return strings.Join(*i, ",")
}

func (i *StringEnum) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func (i *StringEnum) Type() string {
	return "strings"
}
