// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package gopcua

import (
	"context"

	opcuaGopcua "github.com/gopcua/opcua"
	"github.com/gopcua/opcua/id"
	uaGopcua "github.com/gopcua/opcua/ua"

	"github.com/absmach/opcua-cli/opcua"
	"github.com/absmach/opcua-cli/pkg/errors"
)

// Objects folder, the default browse root.
const objectsFolder = "i=85"

const maxBrowseDepth = 10

func (s service) Browse(ctx context.Context, cfg opcua.Config, nodeID string) ([]opcua.BrowsedNode, error) {
	if nodeID == "" {
		nodeID = objectsFolder
	}
	nid, err := uaGopcua.ParseNodeID(nodeID)
	if err != nil {
		return nil, errors.Wrap(opcua.ErrConfiguration, errors.Wrap(errFailedParseNodeID, err))
	}

	c, err := s.connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer s.disconnect(c)

	nodes, err := browse(c.Node(nid), "", 0)
	if err != nil {
		return nil, errors.Wrap(errFailedRead, err)
	}

	return nodes, nil
}

func browse(n *opcuaGopcua.Node, path string, level int) ([]opcua.BrowsedNode, error) {
	if level > maxBrowseDepth {
		return nil, nil
	}

	attrs, err := n.Attributes(
		uaGopcua.AttributeIDNodeClass,
		uaGopcua.AttributeIDBrowseName,
		uaGopcua.AttributeIDDescription,
		uaGopcua.AttributeIDAccessLevel,
		uaGopcua.AttributeIDDataType,
	)
	if err != nil {
		return nil, err
	}

	node := opcua.BrowsedNode{NodeID: n.ID.String()}

	var nodeClass uaGopcua.NodeClass
	switch status := attrs[0].Status; status {
	case uaGopcua.StatusOK:
		nodeClass = uaGopcua.NodeClass(attrs[0].Value.Int())
	default:
		return nil, status
	}

	switch status := attrs[1].Status; status {
	case uaGopcua.StatusOK:
		node.BrowseName = attrs[1].Value.String()
	default:
		return nil, status
	}

	switch status := attrs[2].Status; status {
	case uaGopcua.StatusOK:
		node.Description = attrs[2].Value.String()
	case uaGopcua.StatusBadAttributeIDInvalid:
		// ignore
	default:
		return nil, status
	}

	switch status := attrs[3].Status; status {
	case uaGopcua.StatusOK:
		accessLevel := uaGopcua.AccessLevelType(attrs[3].Value.Int())
		node.Writable = accessLevel&uaGopcua.AccessLevelTypeCurrentWrite == uaGopcua.AccessLevelTypeCurrentWrite
	case uaGopcua.StatusBadAttributeIDInvalid:
		// ignore
	default:
		return nil, status
	}

	switch status := attrs[4].Status; status {
	case uaGopcua.StatusOK:
		reported := attrs[4].Value.NodeID()
		if dt := mapDataType(reported.IntID()); dt != opcua.TypeUnknown {
			node.DataType = dt.String()
		} else {
			node.DataType = reported.String()
		}
	case uaGopcua.StatusBadAttributeIDInvalid:
		// ignore
	default:
		return nil, status
	}

	node.Path = join(path, node.BrowseName)

	var nodes []opcua.BrowsedNode
	if nodeClass == uaGopcua.NodeClassVariable {
		nodes = append(nodes, node)
	}

	browseChildren := func(refType uint32) error {
		refs, err := n.ReferencedNodes(refType, uaGopcua.BrowseDirectionForward, uaGopcua.NodeClassAll, true)
		if err != nil {
			return err
		}

		for _, rn := range refs {
			children, err := browse(rn, node.Path, level+1)
			if err != nil {
				return err
			}
			nodes = append(nodes, children...)
		}
		return nil
	}

	if err := browseChildren(id.HasComponent); err != nil {
		return nil, err
	}
	if err := browseChildren(id.Organizes); err != nil {
		return nil, err
	}
	if err := browseChildren(id.HasProperty); err != nil {
		return nil, err
	}

	return nodes, nil
}

func join(a, b string) string {
	if a == "" {
		return b
	}
	return a + "." + b
}
