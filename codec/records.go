package codec

import "github.com/m-lab/sta-channel/message"

func (w *writer) objectContextName(o message.ObjectContextName) {
	w.strSlice(o.InstContext)
	w.str(o.ObjName)
}

func (r *reader) objectContextName() (message.ObjectContextName, error) {
	ctx, err := r.strSlice()
	if err != nil {
		return message.ObjectContextName{}, err
	}
	name, err := r.str()
	if err != nil {
		return message.ObjectContextName{}, err
	}
	return message.ObjectContextName{InstContext: ctx, ObjName: name}, nil
}

func (w *writer) objectContextNameSlice(os []message.ObjectContextName) {
	w.u32(uint32(len(os)))
	for _, o := range os {
		w.objectContextName(o)
	}
}

func (r *reader) objectContextNameSlice() ([]message.ObjectContextName, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen {
		return nil, errTooLong
	}
	out := make([]message.ObjectContextName, n)
	for i := range out {
		out[i], err = r.objectContextName()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (w *writer) portData(p message.PortData) {
	w.str(p.Name)
	w.boolean(p.Input)
	w.boolean(p.Output)
	w.boolean(p.Bus)
	w.i32(p.RangeFrom)
	w.i32(p.RangeTo)
	w.u32Slice(p.ConnNetIndices)
}

func (r *reader) portData() (message.PortData, error) {
	var p message.PortData
	var err error
	if p.Name, err = r.str(); err != nil {
		return p, err
	}
	if p.Input, err = r.boolean(); err != nil {
		return p, err
	}
	if p.Output, err = r.boolean(); err != nil {
		return p, err
	}
	if p.Bus, err = r.boolean(); err != nil {
		return p, err
	}
	if p.RangeFrom, err = r.i32(); err != nil {
		return p, err
	}
	if p.RangeTo, err = r.i32(); err != nil {
		return p, err
	}
	if p.ConnNetIndices, err = r.u32Slice(); err != nil {
		return p, err
	}
	return p, nil
}

func (w *writer) portDataSlice(ps []message.PortData) {
	w.u32(uint32(len(ps)))
	for _, p := range ps {
		w.portData(p)
	}
}

func (r *reader) portDataSlice() ([]message.PortData, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen {
		return nil, errTooLong
	}
	out := make([]message.PortData, n)
	for i := range out {
		out[i], err = r.portData()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (w *writer) instanceData(in message.InstanceData) {
	w.str(in.Name)
	w.u32(in.MasterBlockID)
	w.portDataSlice(in.Ports)
}

func (r *reader) instanceData() (message.InstanceData, error) {
	var in message.InstanceData
	var err error
	if in.Name, err = r.str(); err != nil {
		return in, err
	}
	if in.MasterBlockID, err = r.u32(); err != nil {
		return in, err
	}
	if in.Ports, err = r.portDataSlice(); err != nil {
		return in, err
	}
	return in, nil
}

func (w *writer) instanceDataSlice(is []message.InstanceData) {
	w.u32(uint32(len(is)))
	for _, in := range is {
		w.instanceData(in)
	}
}

func (r *reader) instanceDataSlice() ([]message.InstanceData, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen {
		return nil, errTooLong
	}
	out := make([]message.InstanceData, n)
	for i := range out {
		out[i], err = r.instanceData()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (w *writer) blockData(b message.BlockData) {
	w.str(b.Name)
	w.boolean(b.Top)
	w.boolean(b.Leaf)
	w.portDataSlice(b.Ports)
	w.instanceDataSlice(b.Instances)
	w.strSlice(b.NetNames)
	w.str(b.GndNetName)
	w.str(b.VddNetName)
}

func (r *reader) blockData() (message.BlockData, error) {
	var b message.BlockData
	var err error
	if b.Name, err = r.str(); err != nil {
		return b, err
	}
	if b.Top, err = r.boolean(); err != nil {
		return b, err
	}
	if b.Leaf, err = r.boolean(); err != nil {
		return b, err
	}
	if b.Ports, err = r.portDataSlice(); err != nil {
		return b, err
	}
	if b.Instances, err = r.instanceDataSlice(); err != nil {
		return b, err
	}
	if b.NetNames, err = r.strSlice(); err != nil {
		return b, err
	}
	if b.GndNetName, err = r.str(); err != nil {
		return b, err
	}
	if b.VddNetName, err = r.str(); err != nil {
		return b, err
	}
	return b, nil
}

func (w *writer) blockDataSlice(bs []message.BlockData) {
	w.u32(uint32(len(bs)))
	for _, b := range bs {
		w.blockData(b)
	}
}

func (r *reader) blockDataSlice() ([]message.BlockData, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen {
		return nil, errTooLong
	}
	out := make([]message.BlockData, n)
	for i := range out {
		out[i], err = r.blockData()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (w *writer) vertexIdData(v message.VertexIdData) {
	w.strSlice(v.InstContext)
	w.str(v.PinName)
	w.boolean(v.IsDriver)
	w.u32(v.VertexID)
}

func (r *reader) vertexIdData() (message.VertexIdData, error) {
	var v message.VertexIdData
	var err error
	if v.InstContext, err = r.strSlice(); err != nil {
		return v, err
	}
	if v.PinName, err = r.str(); err != nil {
		return v, err
	}
	if v.IsDriver, err = r.boolean(); err != nil {
		return v, err
	}
	if v.VertexID, err = r.u32(); err != nil {
		return v, err
	}
	return v, nil
}

func (w *writer) vertexIdDataSlice(vs []message.VertexIdData) {
	w.u32(uint32(len(vs)))
	for _, v := range vs {
		w.vertexIdData(v)
	}
}

func (r *reader) vertexIdDataSlice() ([]message.VertexIdData, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen {
		return nil, errTooLong
	}
	out := make([]message.VertexIdData, n)
	for i := range out {
		out[i], err = r.vertexIdData()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (w *writer) edgeIdData(e message.EdgeIdData) {
	w.u32(e.FromVertexID)
	w.u32(e.ToVertexID)
	w.u32(e.EdgeID)
}

func (r *reader) edgeIdData() (message.EdgeIdData, error) {
	var e message.EdgeIdData
	var err error
	if e.FromVertexID, err = r.u32(); err != nil {
		return e, err
	}
	if e.ToVertexID, err = r.u32(); err != nil {
		return e, err
	}
	if e.EdgeID, err = r.u32(); err != nil {
		return e, err
	}
	return e, nil
}

func (w *writer) edgeIdDataSlice(es []message.EdgeIdData) {
	w.u32(uint32(len(es)))
	for _, e := range es {
		w.edgeIdData(e)
	}
}

func (r *reader) edgeIdDataSlice() ([]message.EdgeIdData, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen {
		return nil, errTooLong
	}
	out := make([]message.EdgeIdData, n)
	for i := range out {
		out[i], err = r.edgeIdData()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (w *writer) nodeTimingData(n message.NodeTimingData) {
	w.u32(n.NodeID)
	w.boolean(n.IsEndpoint)
	w.boolean(n.HasTiming)
	w.f32(n.MinAAT)
	w.f32(n.MinRAT)
	w.f32(n.MaxAAT)
	w.f32(n.MaxRAT)
	w.boolean(n.HasEndMinPathRat)
	w.boolean(n.HasEndMaxPathRat)
	w.f32(n.MinPathRat)
	w.f32(n.MaxPathRat)
	w.u32(n.EndpointIndex)
}

func (r *reader) nodeTimingData() (message.NodeTimingData, error) {
	var n message.NodeTimingData
	var err error
	if n.NodeID, err = r.u32(); err != nil {
		return n, err
	}
	if n.IsEndpoint, err = r.boolean(); err != nil {
		return n, err
	}
	if n.HasTiming, err = r.boolean(); err != nil {
		return n, err
	}
	if n.MinAAT, err = r.f32(); err != nil {
		return n, err
	}
	if n.MinRAT, err = r.f32(); err != nil {
		return n, err
	}
	if n.MaxAAT, err = r.f32(); err != nil {
		return n, err
	}
	if n.MaxRAT, err = r.f32(); err != nil {
		return n, err
	}
	if n.HasEndMinPathRat, err = r.boolean(); err != nil {
		return n, err
	}
	if n.HasEndMaxPathRat, err = r.boolean(); err != nil {
		return n, err
	}
	if n.MinPathRat, err = r.f32(); err != nil {
		return n, err
	}
	if n.MaxPathRat, err = r.f32(); err != nil {
		return n, err
	}
	if n.EndpointIndex, err = r.u32(); err != nil {
		return n, err
	}
	return n, nil
}

func (w *writer) nodeTimingDataSlice(ns []message.NodeTimingData) {
	w.u32(uint32(len(ns)))
	for _, n := range ns {
		w.nodeTimingData(n)
	}
}

func (r *reader) nodeTimingDataSlice() ([]message.NodeTimingData, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen {
		return nil, errTooLong
	}
	out := make([]message.NodeTimingData, n)
	for i := range out {
		out[i], err = r.nodeTimingData()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (w *writer) pathEndpoints(p message.PathEndpoints) {
	w.boolean(p.FromRise)
	w.boolean(p.FromFall)
	w.objectContextNameSlice(p.FromPins)
	w.strSlice(p.FromClocks)
	w.objectContextNameSlice(p.FromInsts)
	w.boolean(p.ThroughRise)
	w.boolean(p.ThroughFall)
	w.objectContextNameSlice(p.ThroughPins)
	w.objectContextNameSlice(p.ThroughInsts)
	w.objectContextNameSlice(p.ThroughNets)
	w.boolean(p.ToRise)
	w.boolean(p.ToFall)
	w.objectContextNameSlice(p.ToPins)
	w.strSlice(p.ToClocks)
	w.objectContextNameSlice(p.ToInsts)
}

func (r *reader) pathEndpoints() (message.PathEndpoints, error) {
	var p message.PathEndpoints
	var err error
	if p.FromRise, err = r.boolean(); err != nil {
		return p, err
	}
	if p.FromFall, err = r.boolean(); err != nil {
		return p, err
	}
	if p.FromPins, err = r.objectContextNameSlice(); err != nil {
		return p, err
	}
	if p.FromClocks, err = r.strSlice(); err != nil {
		return p, err
	}
	if p.FromInsts, err = r.objectContextNameSlice(); err != nil {
		return p, err
	}
	if p.ThroughRise, err = r.boolean(); err != nil {
		return p, err
	}
	if p.ThroughFall, err = r.boolean(); err != nil {
		return p, err
	}
	if p.ThroughPins, err = r.objectContextNameSlice(); err != nil {
		return p, err
	}
	if p.ThroughInsts, err = r.objectContextNameSlice(); err != nil {
		return p, err
	}
	if p.ThroughNets, err = r.objectContextNameSlice(); err != nil {
		return p, err
	}
	if p.ToRise, err = r.boolean(); err != nil {
		return p, err
	}
	if p.ToFall, err = r.boolean(); err != nil {
		return p, err
	}
	if p.ToPins, err = r.objectContextNameSlice(); err != nil {
		return p, err
	}
	if p.ToClocks, err = r.strSlice(); err != nil {
		return p, err
	}
	if p.ToInsts, err = r.objectContextNameSlice(); err != nil {
		return p, err
	}
	return p, nil
}
