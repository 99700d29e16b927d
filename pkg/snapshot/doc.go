/*
Package snapshot implements whole-store backup and restore.

Export copies every entity into a single JSON document with a version tag
and creation timestamp. Import is fail-closed: a document that does not
parse mutates nothing. A document that parses is applied as a staged
commit, one atomic backing transaction covering every entity it mentions,
so a crash mid-restore cannot leave some entities updated and others not.
Entities absent from the document keep their current values; a present
profile is merged block by block against the current profile rather than
replaced wholesale.
*/
package snapshot
