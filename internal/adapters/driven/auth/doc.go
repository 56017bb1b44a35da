// Package auth provides TokenProvider implementations for GitHub access.
//
// Tokens are resolved in order: the --github-token flag, the GITHUB_TOKEN
// environment variable, then github.token in the config file. With none of
// these the GitHub client runs anonymously.
package auth
