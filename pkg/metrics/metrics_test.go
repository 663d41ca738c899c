package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveScrape(t *testing.T) {
	beforeRuns := testutil.ToFloat64(ScrapeRunsTotal.WithLabelValues(SourceFallback))
	beforeAds := testutil.ToFloat64(ScrapedAdsTotal.WithLabelValues(SourceFallback))

	ObserveScrape(SourceFallback, 2)

	assert.Equal(t, beforeRuns+1, testutil.ToFloat64(ScrapeRunsTotal.WithLabelValues(SourceFallback)))
	assert.Equal(t, beforeAds+2, testutil.ToFloat64(ScrapedAdsTotal.WithLabelValues(SourceFallback)))
}

func TestObserveScrape_ErroNaoContaAnuncios(t *testing.T) {
	beforeAds := testutil.ToFloat64(ScrapedAdsTotal.WithLabelValues(SourceError))

	ObserveScrape(SourceError, 0)

	assert.Equal(t, beforeAds, testutil.ToFloat64(ScrapedAdsTotal.WithLabelValues(SourceError)))
}

func TestObserveTrendAnalysis(t *testing.T) {
	before := testutil.ToFloat64(TrendAnalysisRunsTotal.WithLabelValues(StatusFailure))

	ObserveTrendAnalysis(StatusFailure, 0.5)

	assert.Equal(t, before+1, testutil.ToFloat64(TrendAnalysisRunsTotal.WithLabelValues(StatusFailure)))
}
