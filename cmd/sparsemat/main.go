// Command sparsemat is a small toolkit around the sparse matrix library:
// it applies add/subtract/multiply to persisted matrix files and renders
// sparsity-pattern images. Matrix paths are local files by default, or S3
// object keys when a bucket is configured (flag or SPARSEMAT_* env).
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/sparsemat/store"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:          "sparsemat",
		Short:        "Sparse integer matrix toolkit",
		Long:         "sparsemat reads matrices in the rows=/cols=/(r, c, v) text format,\napplies add, subtract or multiply, and writes the canonical result.",
		SilenceUsage: true,
	}

	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.PersistentFlags().String("bucket", "", "S3 bucket; when set, matrix paths are treated as object keys")
	root.PersistentFlags().String("s3-endpoint", "", "custom S3 endpoint (for min.io and friends)")
	root.PersistentFlags().String("s3-region", "us-east-1", "S3 region")

	viper.SetEnvPrefix("SPARSEMAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"verbose", "bucket", "s3-endpoint", "s3-region"} {
		if err := viper.BindPFlag(name, root.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "bind flag %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sparsemat v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})
	root.AddCommand(newComputeCmd())
	root.AddCommand(newSpyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger from the verbose setting.
func newLogger() (*zap.Logger, error) {
	if viper.GetBool("verbose") {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// newStore picks the persistence backend: local files unless a bucket is
// configured, then S3 with optional custom endpoint.
func newStore() (store.Store, error) {
	bucket := viper.GetString("bucket")
	if bucket == "" {
		return store.NewFileStore(""), nil
	}

	cfg := aws.NewConfig().WithRegion(viper.GetString("s3-region"))
	if ep := viper.GetString("s3-endpoint"); ep != "" {
		cfg = cfg.WithEndpoint(ep).WithS3ForcePathStyle(true)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}

	return store.NewS3Store(s3.New(sess), bucket, ""), nil
}
