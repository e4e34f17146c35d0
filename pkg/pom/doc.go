// SPDX-License-Identifier: MPL-2.0

// Package pom parses Maven project descriptors (pom.xml / *.pom files) into a
// minimal structured model: the artifact coordinates, the packaging, and the
// parent reference fields that coordinate inheritance needs.
//
// The model is deliberately small. reposeed only has to identify artifacts,
// not build them, so dependencies, plugins, properties and the rest of the
// POM surface are ignored by the parser.
package pom
