// Copyright (C) 2025 Craftbase GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import "os"

// Build information. Populated at build-time via -ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	Branch    = "unknown"
	BuildDate = "unknown"
)

// environment variable names used by the service. The environment is read
// once at process start - never per request.
const (
	EnvGithubToken   = "GITHUB_TOKEN" // nolint:gosec // variable name, not a credential
	EnvJWTSecret     = "JWT_SECRET"   // nolint:gosec
	EnvS3Bucket      = "S3_BUCKET"
	EnvS3Region      = "S3_REGION"
	EnvS3PublicURL   = "S3_PUBLIC_URL"
	EnvUploadDir     = "UPLOAD_DIR"
	EnvListenAddress = "LISTEN_ADDRESS"
)

func GithubToken() string {
	return os.Getenv(EnvGithubToken)
}

func JWTSecret() []byte {
	return []byte(os.Getenv(EnvJWTSecret))
}

// S3Bucket returns the configured blob-store bucket. An empty value selects
// the local filesystem storage backend instead.
func S3Bucket() string {
	return os.Getenv(EnvS3Bucket)
}

func S3Region() string {
	return os.Getenv(EnvS3Region)
}

// S3PublicURL is the base url uploaded objects are reachable under.
func S3PublicURL() string {
	return os.Getenv(EnvS3PublicURL)
}

func UploadDir() string {
	if dir := os.Getenv(EnvUploadDir); dir != "" {
		return dir
	}
	return "uploads"
}

func ListenAddress() string {
	if addr := os.Getenv(EnvListenAddress); addr != "" {
		return addr
	}
	return ":8080"
}
