package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return strings.TrimSpace(out.String())
}

func TestCalcCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"calc", "format", "1234567"}, "₹12,34,567"},
		{[]string{"calc", "emi", "--principal", "1000000", "--rate", "7.5", "--months", "240"}, "₹8,056"},
		{[]string{"calc", "emi", "--principal", "1000", "--rate", "0", "--months", "12"}, "₹NaN"},
		{[]string{"calc", "savings", "--income", "50000", "--expenses", "30000"}, "₹20,000"},
		{[]string{"calc", "dti", "--debt", "25000", "--income", "100000"}, "25.00%"},
		{[]string{"calc", "dti", "--debt", "25000", "--income", "0"}, "N/A"},
		{[]string{"calc", "networth", "--asset", "fd=150000", "--liability", "car=50000"}, "₹1,00,000"},
		{[]string{"calc", "fv", "--principal", "1000", "--rate", "12", "--years", "1"}, "₹1,127"},
		{[]string{"calc", "80c", "--invest", "ppf=200000", "--slab", "15L+"}, "₹45,000"},
		{[]string{"calc", "tax", "--annual", "2000000"}, "₹12,500"},
	}

	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			if got := run(t, tc.args...); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	token := run(t, "token", "--user", "u1")
	if strings.Count(token, ".") != 2 {
		t.Errorf("expected a JWT, got %q", token)
	}
}

func TestCalcCommands_FlagsAreIndependent(t *testing.T) {
	execute := func(cmd *cobra.Command, args ...string) string {
		t.Helper()

		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return strings.TrimSpace(out.String())
	}

	tax, savings, dti := newTaxCmd(), newSavingsCmd(), newDTICmd()

	if got := execute(tax, "--annual", "2000000"); got != "₹12,500" {
		t.Fatalf("expected ₹12,500, got %q", got)
	}
	if got := execute(savings, "--expenses", "100"); got != "-₹100" {
		t.Errorf("expected income to default to zero, got %q", got)
	}
	if got := execute(dti, "--debt", "100"); got != "N/A" {
		t.Errorf("expected N/A without income, got %q", got)
	}
}
