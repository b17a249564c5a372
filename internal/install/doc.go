// Package install sequences selection, confirmation and execution of
// catalog items.
//
// Remote skills are installed by [Remote], which runs each entry's
// dependency commands and then its add command. Local items are installed by
// [Local], which resolves the link location and creates the symlink. Both
// are driven by the same selection flow:
//
//	select categories -> select items -> confirm -> execute -> again?
//
// An empty category selection ends the flow; an empty item selection or a
// declined confirmation returns to category selection. A cancelled prompt
// ends the whole session with prompt.ErrCancelled.
package install
