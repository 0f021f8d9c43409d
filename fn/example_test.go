package fn_test

import (
	"fmt"
	"strings"

	"github.com/on-the-ground/funkit/fn"
)

func ExampleWith() {
	shout := func(s string) string { return strings.ToUpper(s) + "!" }
	fmt.Println(fn.With("go", strings.TrimSpace, shout))
	// Output:
	// GO!
}

func ExampleEither() {
	fmt.Println(fn.Either("", "fallback"))
	fmt.Println(fn.Either("primary", "fallback"))
	// Output:
	// fallback
	// primary
}

func ExampleInvokeIf() {
	var sb strings.Builder
	sb.WriteString("hi")
	fmt.Println(fn.InvokeIf(&sb, "String", "default"))
	fmt.Println(fn.InvokeIf(&sb, "NoSuchMethod", "default"))
	// Output:
	// hi
	// default
}

func ExampleNegate() {
	empty := func(s string) bool { return s == "" }
	nonEmpty := fn.Negate(empty)
	fmt.Println(nonEmpty("go"), nonEmpty(""))
	// Output:
	// true false
}
