package rinex

import (
	"fmt"
	"strings"
)

// Rule identifies the class of naming rule a violation refers to.
type Rule int

// Rule classes.
const (
	RuleStructure   Rule = iota + 1 // wrong number of segments or wrong field width
	RuleCharset                     // characters outside the allowed set of a field
	RuleRange                       // numeric field outside its valid range
	RuleEnum                        // coded field matching no allowed value
	RuleConditional                 // segment whose presence contradicts the data type
	RuleCrossField                  // fields valid on their own but conflicting
	RuleUnparseable                 // input the parser cannot inspect at all
)

func (r Rule) String() string {
	return [...]string{"", "structure", "charset", "range", "enum", "conditional", "cross-field", "unparseable"}[r]
}

// MarshalText encodes the rule class as its name.
func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Names of the filename fields referred to by violations.
const (
	FieldFilename    = "filename"
	FieldSiteCode    = "site"
	FieldMonument    = "monument"
	FieldReceiver    = "receiver"
	FieldCountry     = "country"
	FieldDataSource  = "source"
	FieldStartTime   = "starttime"
	FieldFilePeriod  = "period"
	FieldDataFreq    = "frequency"
	FieldDataType    = "datatype"
	FieldFormat      = "format"
	FieldCompression = "compression"
)

// Violation is a single violated naming rule.
type Violation struct {
	Field string `json:"field"` // the field concerned, one of the Field constants
	Rule  Rule   `json:"rule"`
	Msg   string `json:"msg"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Field, v.Rule, v.Msg)
}

// InvalidNameError is the error returned by ParseName for a filename that
// violates the naming convention. It carries every violated rule, in the
// order the convention defines the fields.
type InvalidNameError struct {
	Name       string      `json:"name"`
	Violations []Violation `json:"violations"`
}

func (e *InvalidNameError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.String())
	}
	return fmt.Sprintf("invalid RINEX3 filename %q: %s", e.Name, strings.Join(msgs, "; "))
}
