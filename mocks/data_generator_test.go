package mocks

import (
	"reflect"
	"testing"
	"time"
)

func TestDataGenerator_Generate(t *testing.T) {
	gen := NewDataGenerator(42) // Fixed seed for reproducibility
	config := DefaultConfig()
	config.Count = 100

	data := gen.Generate(config)

	if len(data) != 100 {
		t.Errorf("expected 100 candles, got %d", len(data))
	}

	// Verify candles are in chronological order
	for i := 1; i < len(data); i++ {
		if !data[i].OpenTime.Unwrap().After(data[i-1].OpenTime.Unwrap()) {
			t.Errorf("candles not in chronological order at index %d", i)
		}
	}

	// Verify every candle passes validation
	for i, d := range data {
		if err := d.Validate(); err != nil {
			t.Errorf("invalid candle at index %d: %v", i, err)
		}
	}

	// Verify time intervals
	expectedInterval := config.Interval
	for i := 1; i < len(data); i++ {
		actualInterval := data[i].OpenTime.Unwrap().Sub(data[i-1].OpenTime.Unwrap())
		if actualInterval != expectedInterval {
			t.Errorf("unexpected interval at index %d: expected %v, got %v",
				i, expectedInterval, actualInterval)
		}
	}
}

func TestDataGenerator_Reproducibility(t *testing.T) {
	// Same seed should produce same results
	gen1 := NewDataGenerator(42)
	gen2 := NewDataGenerator(42)

	config := DefaultConfig()
	config.Count = 10

	data1 := gen1.Generate(config)
	data2 := gen2.Generate(config)

	for i := range data1 {
		if data1[i].Close != data2[i].Close {
			t.Errorf("data not reproducible at index %d: got %f and %f",
				i, data1[i].Close, data2[i].Close)
		}
	}
}

func TestDataGenerator_Different_Seeds(t *testing.T) {
	gen1 := NewDataGenerator(42)
	gen2 := NewDataGenerator(123)

	config := DefaultConfig()
	config.Count = 10

	data1 := gen1.Generate(config)
	data2 := gen2.Generate(config)

	// Different seeds should produce different results
	sameCount := 0
	for i := range data1 {
		if data1[i].Close == data2[i].Close {
			sameCount++
		}
	}

	if sameCount == len(data1) {
		t.Error("different seeds produced identical data")
	}
}

func TestGenerate10K(t *testing.T) {
	data := Generate10K()

	if len(data) != 10000 {
		t.Errorf("expected 10000 candles, got %d", len(data))
	}

	for i := 0; i < 100; i++ { // Check first 100 for speed
		if data[i].Ask() < 0 {
			t.Errorf("negative ask volume at index %d", i)
		}
	}
}

func TestGenerateSampleCandles(t *testing.T) {
	data := GenerateSampleCandles(3000, 42, 100.0)

	if len(data) != 3000 {
		t.Fatalf("expected 3000 candles, got %d", len(data))
	}

	for i, d := range data {
		if err := d.Validate(); err != nil {
			t.Errorf("invalid candle at index %d: %v", i, err)
		}

		if !d.Contains(d.Open) || !d.Contains(d.Close) {
			t.Errorf("open or close outside the range at index %d", i)
		}
	}

	// Same inputs give the same series
	again := GenerateSampleCandles(3000, 42, 100.0)
	if !reflect.DeepEqual(data, again) {
		t.Fatal("series not deterministic")
	}

	// The trend dominates the variation over the series
	if data[len(data)-1].Close <= data[0].Close {
		t.Errorf("expected an uptrend, first close %f last close %f", data[0].Close, data[len(data)-1].Close)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Count != 10000 {
		t.Errorf("expected default count 10000, got %d", config.Count)
	}

	if config.Interval != time.Minute {
		t.Errorf("expected default interval 1m, got %v", config.Interval)
	}

	if config.InitialPrice != 100.0 {
		t.Errorf("expected default initial price 100.0, got %f", config.InitialPrice)
	}
}
