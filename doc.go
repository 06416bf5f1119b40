// Package dataset contains the core components of a dataset-view engine: an immutable index
// describing the addressable data-points of a dataset (participants, recordings, trials, ...)
// and lightweight Views over that index which can be grouped, subset, iterated and partitioned
// without touching the heavy underlying data. This root package defines the types employed
// during the regular use of the engine, as well as in its extension, and is a good overview
// of its key concepts.
package dataset
