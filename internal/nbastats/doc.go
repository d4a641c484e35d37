// Package nbastats provides a client for the public NBA Stats API.
//
// The nbastats package fetches league standings (leaguestandingsv3) and
// advanced team stats (leaguedashteamstats) for a single season. Responses
// arrive in the stats.nba.com resultSets envelope (parallel header and row
// arrays); the package resolves columns by name and returns plain maps keyed
// by team ID. Each call sleeps a configurable courtesy delay first so
// back-to-back requests don't trip the upstream rate limiter.
package nbastats
