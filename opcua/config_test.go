// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package opcua_test

import (
	"fmt"
	"testing"

	"github.com/absmach/opcua-cli/opcua"
	"github.com/absmach/opcua-cli/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		desc string
		cfg  opcua.Config
		err  error
	}{
		{
			desc: "anonymous auth",
			cfg:  opcua.Config{AuthType: opcua.AuthAnonymous},
		},
		{
			desc: "userpass auth with credentials",
			cfg: opcua.Config{
				AuthType: opcua.AuthUserPass,
				Username: "operator",
				Password: "secret",
			},
		},
		{
			desc: "userpass auth without username",
			cfg: opcua.Config{
				AuthType: opcua.AuthUserPass,
				Password: "secret",
			},
			err: opcua.ErrConfiguration,
		},
		{
			desc: "userpass auth without password",
			cfg: opcua.Config{
				AuthType: opcua.AuthUserPass,
				Username: "operator",
			},
			err: opcua.ErrConfiguration,
		},
		{
			desc: "userpass auth without credentials",
			cfg:  opcua.Config{AuthType: opcua.AuthUserPass},
			err:  opcua.ErrConfiguration,
		},
		{
			desc: "empty auth type",
			cfg:  opcua.Config{},
			err:  opcua.ErrConfiguration,
		},
		{
			desc: "unknown auth type",
			cfg:  opcua.Config{AuthType: "certificate"},
			err:  opcua.ErrConfiguration,
		},
	}

	for _, tc := range cases {
		err := tc.cfg.Validate()
		if tc.err != nil {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected error %v got %v\n", tc.desc, tc.err, err))
			continue
		}
		assert.NoError(t, err, fmt.Sprintf("%s: unexpected error %v\n", tc.desc, err))
	}
}
