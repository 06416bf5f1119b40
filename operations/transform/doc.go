// Package transform provides DatasetOperations, which derive Views from Views and
// are chained with Dataset.To:
//
//	trials, err := ds.To(
//		transform.Where("participant", "p1", "p2"),
//		transform.Group("participant", "recording"),
//		transform.Take(4),
//	)
package transform
