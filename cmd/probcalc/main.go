package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"probcalc/adapters/excel"
	"probcalc/app"
	"probcalc/domain/stats"
	"probcalc/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	dataFile := flag.String("data", "", "optional .xlsx or .csv file to summarize")
	column := flag.String("column", "", "header of the numeric column to read from -data")
	flag.Parse()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	engine, err := app.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	if err := printExamples(engine); err != nil {
		log.Fatalf("Example failed: %v", err)
	}

	if *dataFile != "" {
		if err := summarizeFile(engine, *dataFile, *column); err != nil {
			log.Fatalf("Failed to summarize %s: %v", *dataFile, err)
		}
	}
}

func printExamples(engine *app.Engine) error {
	basic, err := engine.BasicProbability(1, 6)
	if err != nil {
		return err
	}
	fmt.Println("Basic Probability:", basic)

	gaussian, err := engine.GaussianDensity(0, 0, 1)
	if err != nil {
		return err
	}
	fmt.Println("Gaussian Distribution:", gaussian)

	binomial, err := engine.BinomialProbability(10, 3, 0.5)
	if err != nil {
		return err
	}
	fmt.Println("Binomial Distribution:", binomial)

	conditional, err := engine.ConditionalProbability(0.2, 0.5)
	if err != nil {
		return err
	}
	fmt.Println("Conditional Probability:", conditional)

	distribution, err := engine.ValidateDistribution(stats.Distribution{0.1, 0.2, 0.3, 0.4})
	if err != nil {
		return err
	}
	fmt.Println("Custom Distribution:", distribution)

	estimate, err := engine.PredictiveEstimate(stats.Dataset{1, 2, 3, 4, 5})
	if err != nil {
		return err
	}
	fmt.Println("Predictive Analysis:", estimate)

	risk, err := engine.RiskAssessment(stats.Dataset{10, 12, 14, 16, 18})
	if err != nil {
		return err
	}
	fmt.Println("Risk Assessment:", risk)

	forecast, err := engine.ForecastLinear(stats.Dataset{1, 2, 3, 4, 5}, 3)
	if err != nil {
		return err
	}
	fmt.Println("Time Series Analysis:", forecast)

	summary, err := engine.SummaryStatistics(stats.Dataset{10, 20, 30, 40, 50})
	if err != nil {
		return err
	}
	fmt.Printf("Advanced Analysis: %+v\n", summary)

	squares, err := app.ParallelMap(context.Background(), engine, []int{1, 2, 3, 4}, func(x int, _ ...any) (int, error) {
		return x * x, nil
	})
	if err != nil {
		return err
	}
	fmt.Println("Parallel Processing:", squares)

	return nil
}

func summarizeFile(engine *app.Engine, path, column string) error {
	data, err := excel.NewDataReader(path).ReadColumn(column)
	if err != nil {
		return err
	}

	summary, err := engine.SummaryStatistics(data)
	if err != nil {
		return err
	}
	fmt.Printf("%s summary: %+v\n", column, summary)

	forecast, err := engine.ForecastLinear(data, 3)
	if err != nil {
		return err
	}
	fmt.Printf("%s forecast: %v\n", column, forecast)

	return nil
}
