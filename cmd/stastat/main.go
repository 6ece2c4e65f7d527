// stastat connects to a channel as a client, polls GetDesignStats on an
// interval, and writes the accumulated samples to a CSV file.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/m-lab/go/flagx"
	"github.com/m-lab/go/prometheusx"
	"github.com/m-lab/go/rtx"

	"github.com/m-lab/sta-channel/client"
	"github.com/m-lab/sta-channel/transport"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

var (
	baseDir      = flag.String("base-dir", ".", "directory containing the channel's .blk/.seg files")
	name         = flag.String("name", "sta", "channel name")
	encoderID    = flag.Uint("encoder-id", 41, "expected encoder id")
	outFile      = flag.String("out", "stastat.csv", "CSV output path")
	pollInterval = flag.Duration("interval", 5*time.Second, "polling interval")
	promPort     = flag.String("prom", ":9091", "Prometheus metrics export address and port")
)

// Row is one CSV record: a timestamped design-stats sample.
type Row struct {
	Time   string  `csv:"time"`
	MinWNS float32 `csv:"min_wns"`
	MaxWNS float32 `csv:"max_wns"`
	MinTNS float32 `csv:"min_tns"`
	MaxTNS float32 `csv:"max_tns"`
}

func main() {
	flag.Parse()
	flagx.ArgsFromEnv(flag.CommandLine)

	promSrv := prometheusx.MustStartPrometheus(*promPort)
	defer promSrv.Shutdown(context.Background())

	ch, err := transport.Connect(transport.Client, *baseDir, *name, uint32(*encoderID))
	rtx.Must(err, "Could not connect to channel %q", *name)
	defer ch.Disconnect()

	c := client.New(ch)
	rtx.Must(c.Ping(time.Second), "Engine did not respond to ping")

	var rows []Row
	ticker := time.NewTicker(*pollInterval)
	defer ticker.Stop()

	for range ticker.C {
		stats, err := c.GetDesignStats()
		if err != nil {
			log.Println("GetDesignStats:", err)
			continue
		}
		rows = append(rows, Row{
			Time:   time.Now().UTC().Format(time.RFC3339),
			MinWNS: stats.MinWNS,
			MaxWNS: stats.MaxWNS,
			MinTNS: stats.MinTNS,
			MaxTNS: stats.MaxTNS,
		})
		if err := writeCSV(rows); err != nil {
			log.Println("writeCSV:", err)
		}
	}
}

func writeCSV(rows []Row) error {
	f, err := os.Create(*outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.Marshal(rows, f)
}
