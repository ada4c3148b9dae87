// Package model provides the data structures shared by the autodraw packages.
// It defines the workflow configuration fetched once per project, the progress cursor and
// the geometry record refreshed on every fetch, and the partial update used to merge them.
package model
