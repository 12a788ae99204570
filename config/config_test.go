package config

import "testing"

func TestReadEnv(t *testing.T) {
	t.Setenv("GW_TEST_STRING", "value")
	t.Setenv("GW_TEST_BOOL", "Yes")
	t.Setenv("GW_TEST_INT", "42")
	t.Setenv("GW_TEST_BAD_INT", "forty two")

	s := "default"
	readEnvString("GW_TEST_STRING", &s)
	readEnvString("GW_TEST_MISSING", &s)
	if s != "value" {
		t.Errorf("readEnvString() = %q", s)
	}

	b := false
	readEnvBool("GW_TEST_BOOL", &b)
	if !b {
		t.Errorf("readEnvBool() did not parse Yes")
	}
	readEnvBool("GW_TEST_MISSING", &b)
	if !b {
		t.Errorf("readEnvBool() changed the value of a missing variable")
	}

	i := 7
	readEnvInt("GW_TEST_BAD_INT", &i)
	if i != 7 {
		t.Errorf("readEnvInt() accepted %q", "forty two")
	}
	readEnvInt("GW_TEST_INT", &i)
	if i != 42 {
		t.Errorf("readEnvInt() = %d", i)
	}
}
