// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless shopping-list client runtime.
//
// It wires the local cache, the remote adapter, the client services and the
// background workers into a single process lifecycle used by the CLI.
package client
