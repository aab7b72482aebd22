package main

import (
	"fmt"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/treeline-ui/treeline/internal/config"
	"github.com/treeline-ui/treeline/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		configPath string
		bucket     string
		prefix     string
		region     string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the built site to S3",
		Long: `Upload the built site to S3.

Runs against the output of "treeline build". Credentials are
resolved the usual AWS way (environment, shared config, IAM role).

Examples:
  treeline publish
  treeline publish --bucket=docs.example.com --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, configPath, bucket, prefix, region, dryRun)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "Path to treeline.toml")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix (default from config)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List planned uploads without uploading")

	return cmd
}

func runPublish(cmd *cobra.Command, configPath, bucket, prefix, region string, dryRun bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if bucket == "" {
		bucket = cfg.Publish.Bucket
	}
	if prefix == "" {
		prefix = cfg.Publish.Prefix
	}
	if region == "" {
		region = cfg.Publish.Region
	}
	if bucket == "" {
		return fmt.Errorf("no bucket configured: set publish.bucket or pass --bucket")
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}

	p := publish.New(s3.NewFromConfig(awsCfg), publish.Config{
		Bucket: bucket,
		Prefix: prefix,
		DryRun: dryRun,
		Logger: logger,
	})

	n, err := p.PublishDir(ctx, cfg.Paths.Output)
	if err != nil {
		return err
	}
	fmt.Printf("Published %d objects to s3://%s/%s\n", n, bucket, prefix)
	return nil
}
