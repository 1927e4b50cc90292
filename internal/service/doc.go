// Package service contains the resource controllers of the questions API.
//
// There is one controller per entity kind (users, questions, categories,
// solutions and rationales) plus the login use case. Every operation takes
// the authenticated auth.Principal as an explicit argument, checks role and
// ownership, validates the optional-field payload and then talks to the
// repositories defined in internal/store.
//
// Expected failures (forbidden, not found, unprocessable payload, uniqueness
// or reference conflicts) are returned as *OutcomeError values carrying the
// catalog operation and the HTTP status the API layer should answer with.
// Any other error is a persistence failure and maps to 500.
package service
