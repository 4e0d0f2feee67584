package domain

var (
	// swapd_quote_requests_total
	//
	// counter that measures the number of quote requests issued to the
	// route oracle
	//
	// Has the following labels:
	// * trigger - "user" or "refetch"
	SwapdQuoteRequestsMetricName = "swapd_quote_requests_total"

	// swapd_quote_stale_dropped_total
	//
	// counter that measures the number of oracle results discarded because
	// their originating state no longer matched the current state
	SwapdQuoteStaleDroppedMetricName = "swapd_quote_stale_dropped_total"

	// swapd_cost_estimate_errors_total
	//
	// counter that measures the number of failed transaction cost estimates
	SwapdCostEstimateErrorsMetricName = "swapd_cost_estimate_errors_total"

	// swapd_swaps_total
	//
	// counter that measures the number of submitted swaps
	//
	// Has the following labels:
	// * result - "success", "declined" or "failure"
	SwapdSwapsMetricName = "swapd_swaps_total"

	// swapd_pricing_errors_total
	//
	// counter that measures the number of price fetch errors
	//
	// Has the following labels:
	// * asset - the asset whose price fetch failed
	SwapdPricingErrorsMetricName = "swapd_pricing_errors_total"

	// swapd_requests_total
	//
	// counter that measures the total number of HTTP requests
	//
	// Has the following labels:
	// * method - the HTTP method
	// * endpoint - the request path
	SwapdRequestsMetricName = "swapd_requests_total"

	// swapd_request_duration_seconds
	//
	// histogram of HTTP request latencies
	//
	// Has the following labels:
	// * method - the HTTP method
	// * endpoint - the request path
	SwapdRequestLatencyMetricName = "swapd_request_duration_seconds"
)
