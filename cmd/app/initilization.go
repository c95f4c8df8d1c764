// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gardener/navforge/pkg/content"
	"github.com/gardener/navforge/pkg/content/source"
	"github.com/gardener/navforge/pkg/metrics"
	"github.com/gardener/navforge/pkg/osfakes/osshim"
	"github.com/google/go-github/v43/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/peterbourgon/diskv"
	"golang.org/x/oauth2"
	"k8s.io/klog/v2"
)

// initContentSource returns the source of the site content: a local
// directory, or a GitHub tree read through the API or cloned with git
func initContentSource(ctx context.Context, shim osshim.Os, contentPath string, o InitOptions) (content.Source, error) {
	contentPath = strings.TrimSpace(contentPath)
	if !source.IsResourceURL(contentPath) {
		klog.Infof("Content: %s", contentPath)
		return source.NewLocalDir(shim, contentPath)
	}
	u, err := source.NewURL(contentPath)
	if err != nil {
		return nil, err
	}
	user, token, err := credentials(u.GetHost(), o.EnvCredentials)
	if err != nil {
		return nil, err
	}
	klog.Infof("Content: %s", u)
	if o.UseGit {
		return source.Clone(ctx, shim, contentPath, o.CacheHomeDir, user, token)
	}
	cachePath := filepath.Join(o.CacheHomeDir, "diskv", u.GetHost())
	client, err := buildClient(ctx, token, "https://"+u.GetHost(), cachePath)
	if err != nil {
		return nil, err
	}
	return source.NewGitHub(client.Git, contentPath)
}

// credentials reads the token of a GitHub instance from the environment
// variable mapped to it. Instances without mapping are accessed anonymously.
func credentials(host string, envCredentials map[string]string) (string, string, error) {
	envVar, ok := envCredentials[host]
	if !ok {
		klog.V(4).Infof("No OAuth token configured for %s, accessing it anonymously", host)
		return "", "", nil
	}
	oAuthToken := os.Getenv(envVar)
	if oAuthToken == "" {
		return "", "", fmt.Errorf("%s's OAUTH ENV variable %s is empty", host, envVar)
	}
	// for cases where user credentials are in the format `username:token`
	if user, token, found := strings.Cut(oAuthToken, ":"); found {
		return user, token, nil
	}
	return "", oAuthToken, nil
}

func buildClient(ctx context.Context, accessToken string, host string, cachePath string) (*github.Client, error) {
	base := http.DefaultTransport
	if len(accessToken) > 0 {
		// if token provided replace base RoundTripper
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		base = oauth2.NewClient(ctx, ts).Transport
	}

	flatTransform := func(s string) []string { return []string{} }
	d := diskv.New(diskv.Options{
		BasePath:     cachePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024 * 1024,
	})

	cacheTransport := &httpcache.Transport{
		Transport:           base,
		Cache:               diskcache.NewWithDiskv(d),
		MarkCachedResponses: true,
	}

	httpClient := metrics.InstrumentClientRoundTripperDuration(cacheTransport.Client())
	httpClient.Transport = withClientHTTPLogging(httpClient.Transport)

	if host == "https://github.com" {
		return github.NewClient(httpClient), nil
	}
	return github.NewEnterpriseClient(host, "", httpClient)
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements the RoundTripper interface.
func (rt roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return rt(r)
}

func withClientHTTPLogging(next http.RoundTripper) roundTripperFunc {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		var respStatus string
		resp, err := next.RoundTrip(r)
		if err == nil {
			respStatus = resp.Status
			if resp.Header.Get(httpcache.XFromCache) != "" {
				respStatus += " (cached)"
			}
		}
		klog.V(6).Infof("HTTP %s %s %s", r.Method, r.URL, respStatus)
		return resp, err
	})
}
