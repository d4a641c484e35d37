// Package cli implements the command-line interface for nba-season-fetch.
//
// The cli package provides the Cobra-based CLI that sequences one run:
// fetch standings, fetch advanced stats, merge the two by team ID, write
// the CSV feed, and print a preview table. It coordinates the config,
// nbastats, season, and export packages.
package cli
