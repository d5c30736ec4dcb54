// Package apogee holds the declarative configuration of an application
// built on the framework.
//
// An application describes itself by registering metadata into a Config
// while it is defined: the entities that hold state, the commands and event
// handlers that change it, the read models that expose it, the roles that
// guard it, and the schema migrations that evolve it. Deployment and
// runtime tooling read everything they need back out of the same Config:
// deployment resource names, current schema versions, the provider runtime,
// and token verification settings.
//
// A Config is populated single-threaded during definition, checked once
// with Validate before any deploy or start action proceeds, and treated as
// read-only afterwards. Validate failing means the application's
// declarations are wrong; the fix is always to correct them and deploy
// again, never to retry.
package apogee
