/*
Command stylediff compares snapshots of computed element styles.

A snapshot is a JSON tree of DOM elements, each carrying its identity
attributes (tag name, id, class, type, name, value, text content) and its
computed style properties. stylediff pairs the elements of two snapshots
by their identity attributes and reports differing style properties.
Differences in error-class properties let the comparison fail.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

func main() {
	execute()
}
