// Meridian is a toolkit for the restricted mediation sequence dialect used
// by integration gateways.
//
// It parses inSequence configurations into a typed syntax tree, lints them,
// re-renders them canonically, and can watch a directory and reparse files
// as they change:
//
//	# Validate a sequence configuration
//	meridian lint --file inbound.xml
//
//	# Canonically reformat a configuration in place
//	meridian fmt --file inbound.xml --write
//
//	# Watch a directory and reparse on change
//	meridian watch --config meridian.yaml
//
//	# Show version information
//	meridian version
package main

func main() {
	Execute()
}
