package header_test

import (
	"context"
	"fmt"

	"github.com/walteh/relicense/pkg/header"
)

func ExamplePolicy_Rewrite() {
	// Define a header pair
	policy := &header.Policy{
		Name:        "example",
		OldExact:    "/* old header */",
		Replacement: "/* new header */",
		Markers:     header.DefaultMarkers,
	}

	// Rewrite a file that carries the old header
	result, err := policy.Rewrite(context.Background(), []byte("/* old header */\nconst x = 1;\n"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Printf("Outcome: %s\n", result.Outcome)
	fmt.Printf("Matcher: %s\n", result.Matcher)
	fmt.Printf("Modified:\n%s", result.ModifiedContent)

	// Output:
	// Outcome: replaced
	// Matcher: exact
	// Modified:
	// /* new header */
	//
	// const x = 1;
}

func ExamplePolicy_Rewrite_marker() {
	// Directive lines stay at line 1 when a header is inserted
	policy := &header.Policy{
		Name:        "example",
		Replacement: "/* new header */",
		Markers:     header.DefaultMarkers,
	}

	result, err := policy.Rewrite(context.Background(), []byte("'use client'\nexport const x = 1;\n"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Outcome: %s\n", result.Outcome)
	fmt.Printf("Modified:\n%s", result.ModifiedContent)

	// Output:
	// Outcome: added
	// Modified:
	// 'use client'
	//
	// /* new header */
	//
	// export const x = 1;
}
