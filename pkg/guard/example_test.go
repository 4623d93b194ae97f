package guard_test

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dmitrymomot/guard/pkg/guard"
)

var skuPattern = regexp.MustCompile(`^(?P<vendor>[A-Z]{3})-(?P<item>\d{4})$`)

type Product struct {
	SKU    string
	Name   string
	Vendor string
	Stock  int
}

func NewProduct(sku, name string, stock int) (*Product, error) {
	m, err := guard.PatternRegexp("sku", sku, skuPattern)
	if err != nil {
		return nil, err
	}
	if err := guard.NotBlank("name", name); err != nil {
		return nil, err
	}
	if _, err := guard.Length("name", name, 3, 64); err != nil {
		return nil, err
	}
	if err := guard.InRange("stock", stock, 0, 10_000); err != nil {
		return nil, err
	}

	return &Product{SKU: m.Value(), Name: name, Vendor: m.Named("vendor"), Stock: stock}, nil
}

func Example() {
	p, err := NewProduct("ACM-0042", "Rocket skates", 12)
	fmt.Println(p.Vendor, err)

	_, err = NewProduct("ACM-0042", "Rocket skates", -1)
	fmt.Println(err)
	fmt.Println(errors.Is(err, guard.ErrOutOfRangeArgument))

	_, err = NewProduct("acme-42", "Rocket skates", 1)
	fmt.Println(errors.Is(err, guard.ErrFormatArgument))
	// Output:
	// ACM <nil>
	// stock: accepted range: [0, 10000]
	// true
	// true
}

func ExampleNotBlank() {
	fmt.Println(guard.NotBlank("title", ""))
	fmt.Println(guard.NotBlank("title", "\x00"))
	fmt.Println(guard.NotBlank("title", "   "))
	fmt.Println(guard.NotBlank("title", "ok"))
	// Output:
	// title: must not be empty
	// title: must not be empty
	// title: must not be whitespace
	// <nil>
}

func ExamplePattern() {
	m, err := guard.Pattern("code", "abc123", "^([a-z]+)([0-9]+)$")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Group(1), m.Group(2))
	// Output: abc 123
}

func ExampleDefined() {
	_, err := guard.Defined("color", Color(2), Red, Green)
	fmt.Println(err)
	// Output: color: type guard_test.Color does not define an enumerated value for '2'
}
