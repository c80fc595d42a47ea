/*
Package cliparse handles configuration from CLI flags and environment
variables, with a .env file loaded as a fallback.

Required settings:

  - DATABASE_URL (-d): database connection string
  - TOKEN_SECRET (--token-secret): bearer token signing secret

Optional settings:

  - PORT (-p): server port (default: 3419)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_ACCOUNT_ID (--admin): administrator identity for a fresh
    deployment; ignored once a state snapshot exists
*/
package cliparse
