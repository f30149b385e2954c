package strx_test

import (
	"fmt"

	"github.com/dmitrymomot/strx"
	"github.com/dmitrymomot/strx/pkg/jsonsniff"
)

func ExampleSlug() {
	fmt.Println(strx.Slug("Héllo Wôrld!"))
	fmt.Println(strx.Slug("  Multiple   Spaces_here--now "))
	fmt.Println(strx.SlugWith("Ünïçödé Tëst", "_"))
	// Output:
	// hello-world
	// multiple-spaces-here-now
	// unicode_test
}

func ExampleASCII() {
	fmt.Println(strx.ASCII("Straße Щука ©2024"))
	// Output: Strasse Shchuka (c)2024
}

func ExampleSnakeCase() {
	fmt.Println(strx.SnakeCase("HelloWorld", "_"))
	fmt.Println(strx.CamelCase("hello_world"))
	fmt.Println(strx.StudlyCase("hello-world_test"))
	fmt.Println(strx.SnakeCaseSafe("ÜberCool Straße", "_"))
	// Output:
	// hello_world
	// helloWorld
	// HelloWorldTest
	// uber_cool_strasse
}

func ExampleLimit() {
	fmt.Println(strx.Limit("abcdefgh", 5, "..."))
	fmt.Println(strx.Limit("short", 100, "..."))
	// Output:
	// abcde...
	// short
}

func ExampleStartsWith() {
	fmt.Println(strx.StartsWith([]string{"foo", "bar"}, "foobar"))
	fmt.Println(strx.EndsWith([]string{"baz"}, "foobar"))
	fmt.Println(strx.Contains([]string{"oba"}, "foobar"))
	// Output:
	// true
	// false
	// true
}

func ExampleJSON() {
	m, err := strx.JSON(`{"a":1}`)
	fmt.Println(m["a"], err)

	_, err = strx.JSON("not json")
	fmt.Println(jsonsniff.KindOf(err))

	_, err = strx.JSON("{invalid}")
	fmt.Println(jsonsniff.KindOf(err))
	// Output:
	// 1 <nil>
	// GuardFailed
	// SyntaxError
}
