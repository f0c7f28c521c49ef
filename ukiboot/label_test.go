// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package ukiboot

import (
	"errors"

	"golang.org/x/sys/unix"
	"gopkg.in/check.v1"
)

type labelSuite struct {
	mapFsMixin
	origUname func(*unix.Utsname) error
}

var _ = check.Suite(&labelSuite{})

func (s *labelSuite) SetUpTest(c *check.C) {
	s.mapFsMixin.SetUpTest(c)
	s.origUname = unixUname
	s.mockUname("Linux", nil)
}

func (s *labelSuite) TearDownTest(c *check.C) {
	unixUname = s.origUname
	s.mapFsMixin.TearDownTest(c)
}

func (s *labelSuite) mockUname(sysname string, err error) {
	unixUname = func(uts *unix.Utsname) error {
		if err != nil {
			return err
		}
		*uts = unix.Utsname{}
		copy(uts.Sysname[:], sysname)
		return nil
	}
}

func (s *labelSuite) TestDistributorWins(c *check.C) {
	s.writeFile(c, "/etc/os-release", `PRETTY_NAME="Ubuntu 24.04 LTS"`)
	c.Check(ResolveLabel("Arch"), check.Equals, "Arch Linux")
	c.Check(ResolveLabel("  Debian "), check.Equals, "Debian Linux")
}

func (s *labelSuite) TestPrettyName(c *check.C) {
	s.writeFile(c, "/etc/os-release", `# comment
NAME="Arch Linux"
PRETTY_NAME="Arch Linux"
ID=arch
BUILD_ID=rolling
`)
	c.Check(ResolveLabel(""), check.Equals, "Arch Linux")
}

func (s *labelSuite) TestNameWithoutPrettyName(c *check.C) {
	s.writeFile(c, "/etc/os-release", "NAME=Fedora\nID=fedora\n")
	c.Check(ResolveLabel(""), check.Equals, "Fedora")
}

func (s *labelSuite) TestIDOnly(c *check.C) {
	s.writeFile(c, "/etc/os-release", "ID=arch\n")
	c.Check(ResolveLabel(""), check.Equals, "Arch")
}

func (s *labelSuite) TestUsrLibFallback(c *check.C) {
	s.writeFile(c, "/usr/lib/os-release", `PRETTY_NAME='openSUSE Tumbleweed'`)
	c.Check(ResolveLabel(""), check.Equals, "openSUSE Tumbleweed")
}

func (s *labelSuite) TestEtcBeforeUsrLib(c *check.C) {
	s.writeFile(c, "/etc/os-release", `PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"`)
	s.writeFile(c, "/usr/lib/os-release", `PRETTY_NAME="Something else"`)
	c.Check(ResolveLabel(""), check.Equals, "Debian GNU/Linux 12 (bookworm)")
}

func (s *labelSuite) TestEmptyOSRelease(c *check.C) {
	s.writeFile(c, "/etc/os-release", "VERSION_ID=1\n")
	c.Check(ResolveLabel(""), check.Equals, "Linux")
}

func (s *labelSuite) TestUnknownDistribution(c *check.C) {
	s.mockUname("GNU", nil)
	c.Check(ResolveLabel(""), check.Equals, "GNU")
}

func (s *labelSuite) TestUnameFails(c *check.C) {
	s.mockUname("", errors.New("no uname"))
	c.Check(ResolveLabel(""), check.Equals, "Linux")

	s.mockUname("", nil)
	c.Check(ResolveLabel(""), check.Equals, "Linux")
}
