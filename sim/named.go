package sim

import "strings"

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// NameMustBeValid panics if the name is not suitable for a simulated
// element. Names are dot-separated tokens, each token being letters,
// digits, or an index suffix like "Bank[3]".
func NameMustBeValid(name string) {
	if name == "" {
		panic("name must not be empty")
	}

	for _, token := range strings.Split(name, ".") {
		tokenMustBeValid(name, token)
	}
}

func tokenMustBeValid(name, token string) {
	if token == "" {
		panic("name " + name + " contains an empty token")
	}

	body := token
	if i := strings.IndexByte(token, '['); i >= 0 {
		if !strings.HasSuffix(token, "]") {
			panic("name " + name + " has an unterminated index")
		}

		index := token[i+1 : len(token)-1]
		if index == "" || !isDigits(index) {
			panic("name " + name + " has a non-numeric index")
		}

		body = token[:i]
	}

	for _, r := range body {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'

		if !isLetter && !isDigit && r != '_' {
			panic("name " + name + " contains invalid character")
		}
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
