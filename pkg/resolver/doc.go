// Package resolver maps tag text to style effects.
//
// The built-in grammar is fixed; callers extend it with a Func (or Map) that is
// consulted only after every built-in form failed to match. See Builtin for the
// grammar and New for the precedence rule.
package resolver
