// Package lsystem expands grammar-based rewriting systems (L-systems) and
// interprets the resulting symbol strings as turtle motion.
//
// What:
//
//   - Expand rewrites every symbol of the current string in parallel, for a
//     fixed number of rounds; symbols without a rule are copied unchanged.
//   - Draw walks a symbol string left to right as a small state machine over
//     (position, heading, stack depth) and records the pen path as a
//     geom.Sequence.
//
// Symbols understood by Draw:
//
//	draw symbols (default "F")  advance StepLength along the heading, append the point
//	move symbols (default "f")  advance without appending
//	+ / -                       rotate heading by ±AngleStep degrees
//	[                           push (position, heading); tree mode then turns +BranchAngle
//	]                           pop and restore, append the restored point; tree mode
//	                            then turns −BranchAngle. Popping an empty stack fails
//	                            with ErrEmptyStack.
//	anything else               ignored (e.g. the X/Y helper symbols of plant grammars)
//
// Tree mode offsets are applied on top of the restored heading and compose
// with '+'/'-' rotations; they never replace them.
//
// Complexity:
//
//   - Expand: O(Σ output length over all rounds); each round is pre-sized
//     exactly, so no quadratic reallocation.
//   - Draw:   O(len(symbols)) time; output pre-sized by a counting pass; the
//     branch stack is an array arena, so nesting depth never grows the call stack.
//
// Errors:
//
//   - ErrInvalidInput: negative iterations, malformed turtle options, bad preset.
//   - ErrTooLarge:     expansion would exceed MaxSymbols bytes.
//   - ErrEmptyStack:   ']' with no matching '['.
package lsystem
