package reactive

// CSS registers a component-scoped stylesheet fragment on the current
// owner. Calls accumulate; nothing replaces earlier fragments. The
// server collects owner styles into the document head, and the client
// runtime injects them into the page.
//
// Outside an owner the fragment is dropped: there is no component to
// scope it to.
func CSS(fragment string) {
	if owner := currentOwner(); owner != nil {
		owner.addStyle(fragment)
	}
}
