// Package publish uploads a built documentation site to S3.
package publish
