// Package session keeps the games running in this process.
//
// The session package implements:
//   - Thread-safe storage and retrieval of games
//   - Short session ID generation
//   - Idle expiry
//
// Core Types:
//
// Manager stores service.Session values, each holding one engine.Game with
// its difficulty and access times. IDs are matched ignoring case.
//
// Session Identifiers:
//
// Generated IDs are the first eight hex characters of a random UUID.
// Callers may also pick their own IDs.
//
// Usage:
//
//	manager := session.NewManager(session.WithLogger(logger))
//
//	sess, err := manager.Create("", game, "standard")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
//	// Drop games nobody touched for a day
//	go manager.RunCleanup(ctx, 24*time.Hour, time.Hour)
//
// Games are never written to disk; they live as long as the process.
package session
