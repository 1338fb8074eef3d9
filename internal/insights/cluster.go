package insights

// Absolute monthly totals that split the three clusters when no income figure
// is available to form a ratio.
const (
	clusterConservativeCeiling = 500
	clusterHighFloor           = 1500
)

// PredictCluster labels a spending sample given only three category totals.
// Without an income figure there is no ratio to classify on, so fixed
// absolute thresholds on the combined total decide the label.
func PredictCluster(food, transport, entertainment float64) string {
	total := food + transport + entertainment
	switch {
	case total >= clusterHighFloor:
		return ClusterHighSpender
	case total <= clusterConservativeCeiling:
		return ClusterConservativeSpender
	default:
		return ClusterBalancedSpender
	}
}
