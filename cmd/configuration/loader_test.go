// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration_test

import (
	"os"

	"github.com/gardener/navforge/cmd/configuration"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
)

var _ = Describe("Configuration Loader", func() {
	var (
		file   string
		setEnv bool
		vip    *viper.Viper
		err    error
	)
	BeforeEach(func() {
		vip = viper.New()
		setEnv = true
	})
	JustBeforeEach(func() {
		if setEnv {
			Expect(os.Setenv(configuration.NavforgeConfigEnv, file)).To(Succeed())
		}
		err = new(configuration.DefaultConfigurationLoader).Load(vip)
	})
	JustAfterEach(func() {
		if setEnv {
			Expect(os.Unsetenv(configuration.NavforgeConfigEnv)).To(Succeed())
		}
	})
	When("the configuration file is set", func() {
		BeforeEach(func() {
			file = "testdata/config.yaml"
		})
		It("loads the options", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(vip.GetString("format")).To(Equal("hugo"))
			Expect(vip.GetString("ordering")).To(Equal("path"))
			Expect(vip.GetString("cache-dir")).To(Equal("/tmp/navforge"))
			Expect(vip.GetStringMapString("github-oauth-env-map")).To(Equal(map[string]string{"github.com": "GITHUB_TOKEN"}))
		})
		When("an environment variable overrides an option", func() {
			BeforeEach(func() {
				Expect(os.Setenv("NAVFORGE_CACHE_DIR", "/var/cache/navforge")).To(Succeed())
			})
			AfterEach(func() {
				Expect(os.Unsetenv("NAVFORGE_CACHE_DIR")).To(Succeed())
			})
			It("prefers the environment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(vip.GetString("cache-dir")).To(Equal("/var/cache/navforge"))
			})
		})
	})
	When("the configuration file does not exist", func() {
		BeforeEach(func() {
			file = "testdata/missing.yaml"
		})
		It("fails", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("testdata/missing.yaml"))
		})
	})
	When("the environment variable is empty", func() {
		BeforeEach(func() {
			file = ""
		})
		It("fails", func() {
			Expect(err).To(MatchError("the provided environment variable NAVFORGECONFIG is set to empty string"))
		})
	})
})
