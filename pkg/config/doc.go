// Package config loads alternative rule catalogs for rewriterc.
//
// The shipped catalog lives in package catalog and is returned by Default. An
// operator can replace it for a single pass with a file in HCL, YAML or JSON; the
// parser is picked by file extension and unknown fields are rejected.
//
//	mode     = "text"            # or "span"
//	base     = "../clients"      # relative to this file
//	include  = default_include
//	ignore   = ["generated-old/**"]
//	packages = default_packages
//	layouts  = default_layouts
//
//	pattern "manager" {
//	  match   = "class (\\w+)Manager"
//	  replace = "class $${1}Service"
//	}
//
//	literal "pretty-default" {
//	  find    = "pretty: Boolean,"
//	  replace = "pretty: Boolean=false,"
//	}
//
// HCL reads "${" inside a quoted string as an interpolation, so the braced
// placeholder form is written "$${1}" in HCL files. A bare "$1" needs no escaping.
// YAML and JSON values are taken as written.
//
// Pattern rules run before literal rules, each group in the order written.
package config
