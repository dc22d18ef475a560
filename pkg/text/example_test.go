package text_test

import (
	"fmt"

	"github.com/walteh/rewriterc/pkg/text"
)

func ExampleCatalog_Rewrite() {
	// Build a catalog: pattern rules run first, then literal rules
	catalog, err := text.NewCatalog(text.ModeText,
		[]text.PatternRule{
			{Name: "ulong", Match: `\bulong\b`, Replace: "Long"},
		},
		[]text.LiteralRule{
			{Name: "pretty-default", Find: "pretty: Boolean,", Replace: "pretty: Boolean=false,"},
		},
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result := catalog.Rewrite("def count(size: ulong, pretty: Boolean, human: Boolean)")

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Applied: %v\n", result.Applied)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: def count(size: Long, pretty: Boolean=false, human: Boolean)
	// Changes: 2
	// Applied: [ulong pretty-default]
	// Was Modified: true
}

func ExampleExpandTemplate() {
	fmt.Println(text.ExpandTemplate("trait $1Manager { def $2: T }", []string{"Person", "x"}))

	// Output:
	// trait PersonManager { def x: T }
}
