package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decipher3114/go-resl/value"
)

// GenerateValue renders an evaluated Value tree to canonical RESL text.
// Map entries render in stored insertion order, never re-sorted.
func GenerateValue(v *value.Value, pretty bool) string {
	out := &strings.Builder{}
	genValue(out, v, pretty, 0)
	if pretty {
		out.WriteString("\n")
	}
	return out.String()
}

func genValue(out *strings.Builder, v *value.Value, pretty bool, indent int) {
	switch v.Tag {
	case value.TagNull:
		out.WriteString("null")
	case value.TagBoolean:
		out.WriteString(strconv.FormatBool(v.Bool))
	case value.TagInteger:
		out.WriteString(strconv.FormatInt(v.Int, 10))
	case value.TagFloat:
		out.WriteString(floatString(v.Num))
	case value.TagString:
		writeQuoted(out, v.Str)
	case value.TagList:
		out.WriteString("[")
		if len(v.Items) == 0 {
			out.WriteString("]")
			return
		}
		for i, item := range v.Items {
			if pretty {
				out.WriteString("\n")
				pad(out, indent+1)
			}
			genValue(out, item, pretty, indent+1)
			if i < len(v.Items)-1 {
				out.WriteString(",")
			}
		}
		if pretty {
			out.WriteString("\n")
			pad(out, indent)
		}
		out.WriteString("]")
	case value.TagMap:
		out.WriteString("{")
		if len(v.Entries) == 0 {
			out.WriteString("}")
			return
		}
		for i, entry := range v.Entries {
			if pretty {
				out.WriteString("\n")
				pad(out, indent+1)
			}
			writeQuoted(out, entry.Key)
			out.WriteString(":")
			if pretty {
				out.WriteString(" ")
			}
			genValue(out, entry.Value, pretty, indent+1)
			if i < len(v.Entries)-1 {
				out.WriteString(",")
			}
		}
		if pretty {
			out.WriteString("\n")
			pad(out, indent)
		}
		out.WriteString("}")
	default:
		panic(fmt.Sprintf("genValue: unexpected tag %v", v.Tag))
	}
}

func pad(out *strings.Builder, indent int) {
	out.WriteString(strings.Repeat("    ", indent))
}
