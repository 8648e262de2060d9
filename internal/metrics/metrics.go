package metrics

import (
	"fmt"
	"io"
	"strconv"
	"time"

	vm "github.com/VictoriaMetrics/metrics"
	"github.com/metatx/transactions-api/internal/helpers"
)

const (
	sentTransactionsBiconomy      = "dcl_sent_transactions_biconomy"
	limitReachedBiconomy          = "dcl_error_limit_reached_transactions_biconomy"
	cannotEstimateGasBiconomy     = "dcl_error_cannot_estimate_gas_transactions_biconomy"
	relayErrorBiconomy            = "dcl_error_relay_transactions_biconomy"
	sentTransactionsGelato        = "dcl_sent_transactions_gelato"
	serviceErrorsGelato           = "dcl_error_service_errors_gelato"
	timeoutGelato                 = "dcl_error_timeout_gelato"
	revertedTransactionsGelato    = "dcl_error_reverted_transactions_gelato"
	cancelledTransactionsGelato   = "dcl_error_cancelled_transactions_gelato"
	noBalanceTransactionsGelato   = "dcl_error_no_balance_transactions_gelato"
	salePriceTooLow               = "dcl_error_sale_price_too_low"
	httpClientRequestsTotal       = "http_client_requests_total"
	httpClientRequestErrorsTotal  = "http_client_request_errors_total"
	httpClientRequestDurationSecs = "http_client_request_duration_seconds"
)

// Registry owns the service counters. Each instance has its own set so tests do not
// share state.
type Registry struct {
	set *vm.Set
}

// NewRegistry creates a registry backed by a fresh metrics set.
func NewRegistry() *Registry {
	return &Registry{set: vm.NewSet()}
}

// WritePrometheus writes the registry and process metrics in Prometheus text format.
func (r *Registry) WritePrometheus(w io.Writer) {
	r.set.WritePrometheus(w)
	vm.WriteProcessMetrics(w)
}

// CounterValue returns the current value of the named counter, creating it when missing.
func (r *Registry) CounterValue(name string) uint64 {
	return r.set.GetOrCreateCounter(name).Get()
}

func (r *Registry) inc(name string) {
	if r == nil {
		return
	}
	r.set.GetOrCreateCounter(name).Inc()
}

func withLabel(name, label, value string) string {
	return fmt.Sprintf("%s{%s=%q}", name, label, value)
}

// ContractLabel builds the labelled metric name used for per contract counters.
func ContractLabel(name, contract string) string {
	return withLabel(name, "contract", helpers.NormalizeAddress(contract))
}

func (r *Registry) BiconomySent(contract string) {
	r.inc(ContractLabel(sentTransactionsBiconomy, contract))
}

func (r *Registry) BiconomyLimitReached(code string) {
	r.inc(withLabel(limitReachedBiconomy, "code", code))
}

func (r *Registry) BiconomyCannotEstimateGas(contract string) {
	r.inc(ContractLabel(cannotEstimateGasBiconomy, contract))
}

func (r *Registry) BiconomyRelayError(contract string) {
	r.inc(ContractLabel(relayErrorBiconomy, contract))
}

func (r *Registry) GelatoSent()         { r.inc(sentTransactionsGelato) }
func (r *Registry) GelatoServiceError() { r.inc(serviceErrorsGelato) }
func (r *Registry) GelatoTimeout()      { r.inc(timeoutGelato) }
func (r *Registry) GelatoReverted()     { r.inc(revertedTransactionsGelato) }
func (r *Registry) GelatoCancelled()    { r.inc(cancelledTransactionsGelato) }
func (r *Registry) GelatoNoBalance()    { r.inc(noBalanceTransactionsGelato) }

// SalePriceTooLow counts sales rejected by the minimum price check.
func (r *Registry) SalePriceTooLow(contract string) {
	r.inc(ContractLabel(salePriceTooLow, contract))
}

// RecordRequestDuration implements the HTTP client MetricsCollector.
func (r *Registry) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	if r == nil {
		return
	}
	name := fmt.Sprintf("%s{method=%q,path=%q}", httpClientRequestDurationSecs, method, path)
	r.set.GetOrCreateHistogram(name).Update(duration.Seconds())
}

func (r *Registry) RecordRequestCount(method, path string, statusCode int) {
	r.inc(fmt.Sprintf("%s{method=%q,path=%q,status=%q}", httpClientRequestsTotal, method, path, strconv.Itoa(statusCode)))
}

func (r *Registry) RecordRequestError(method, path string) {
	r.inc(fmt.Sprintf("%s{method=%q,path=%q}", httpClientRequestErrorsTotal, method, path))
}
