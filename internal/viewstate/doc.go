// Package viewstate sequences fetches and saves in response to user
// triggers.
//
// Transition is a pure function from the current State and an Event to the
// next State plus at most one Command to run in the background. Machine owns
// the single current State, runs commands on their own goroutines and feeds
// their completion events back through one queue, so the state is only ever
// updated from one goroutine.
package viewstate
