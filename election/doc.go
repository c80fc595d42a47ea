// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the election lifecycle engine: user
registration with administrator review, per-election admission queues,
the voting window state machine, one-vote-per-voter tallying with
overflow-safe counters, and memoized final results.

The engine is deliberately single-threaded. Every operation takes the
caller's Identity, reads the injected Clock once, and either completes or
fails with one of the package's sentinel errors, leaving state as if the
call never happened. The only partial effect anywhere is the documented
hasVoted rollback when a tally increment would overflow.

State lives in one root State value so the host can snapshot and restore
it; see the db package for persistence.
*/
package election
