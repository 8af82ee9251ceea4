// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnswire is a DNS client message parser and serializer with
// wire-level decoding of selected resource-record data formats.
//
// [NewQuery] and [*Query] allows constructing and packing a DNS query
// message. [ParseResponse] and [*Response] allows unpacking and validating
// a raw DNS query response.
//
// For message framing this package does not implement a DNS
// parser/serializer. We use and expose [github.com/miekg/dns] types. On
// top of that, the data portion of selected record types is decoded
// directly from its RFC wire encoding through a registry keyed by RR
// type ([RegisterRData], [DecodeRData]). Currently the registry knows
// how to decode RFC 1876 LOC (location) record bodies ([ParseLOC]).
package dnswire
