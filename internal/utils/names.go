package utils

import "strings"

func ParseFullName(fullname string) (last, first, middle string) {
	fullname = strings.Join(strings.Fields(strings.TrimSpace(fullname)), " ")
	parts := strings.Split(fullname, " ")

	if len(parts) > 0 {
		last = parts[0]
	}
	if len(parts) > 1 {
		first = parts[1]
	}
	if len(parts) > 2 {
		middle = parts[2]
	}

	return
}

// ShortName renders "Aliyev Vali G'ani o'g'li" as "Aliyev V.G'." for the
// signature block of contracts and receipts.
func ShortName(fullname string) string {
	last, first, middle := ParseFullName(fullname)
	if last == "" {
		return ""
	}
	out := last
	if first != "" {
		out += " " + initial(first) + "."
	}
	if middle != "" {
		out += initial(middle) + "."
	}
	return out
}

func initial(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	// keep the apostrophe of letters like G' and O'
	if len(runes) > 1 && (runes[1] == '\'' || runes[1] == '‘' || runes[1] == '’') {
		return string(runes[:2])
	}
	return string(runes[:1])
}
